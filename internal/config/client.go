package config

// ClientProfile is the static business profile of the current demo
// deployment, served as-is to the dashboard.
type ClientProfile struct {
	BusinessName   string          `json:"businessName"`
	Industry       string          `json:"industry"`
	LogoURL        string          `json:"logoUrl"`
	PrimaryColor   string          `json:"primaryColor"`
	SecondaryColor string          `json:"secondaryColor"`
	OwnerName      string          `json:"ownerName"`
	Country        string          `json:"country"`
	Features       map[string]bool `json:"features"`
}

// IndustryProfile tailors the dashboard to a vertical.
type IndustryProfile struct {
	ProductCategories []string `json:"productCategories"`
	MetadataFields    []string `json:"metadataFields"`
	AgentRole         string   `json:"agentRole"`
	AgentGoal         string   `json:"agentGoal"`
}

var clientProfile = ClientProfile{
	BusinessName:   "Demo Business",
	Industry:       "demo",
	LogoURL:        "https://ui-avatars.com/api/?name=Demo+Business&background=6366f1&color=fff",
	PrimaryColor:   "#6366f1",
	SecondaryColor: "#8b5cf6",
	OwnerName:      "Demo Owner",
	Country:        "Paraguay",
	Features: map[string]bool{
		"inventory":    true,
		"analytics":    true,
		"crm":          true,
		"multiChannel": true,
	},
}

var industryProfiles = map[string]IndustryProfile{
	"jewelry": {
		ProductCategories: []string{"Anillos", "Collares", "Aretes", "Pulseras", "Relojes"},
		MetadataFields:    []string{"material", "weight_grams", "stone_type", "stone_carats", "size_mm"},
		AgentRole:         "Asesor de joyería",
		AgentGoal:         "Ayudar a clientes a encontrar la joya perfecta",
	},
	"trading": {
		ProductCategories: []string{"Cursos", "Mentoría", "Señales", "Libros"},
		MetadataFields:    []string{"duration", "level", "language"},
		AgentRole:         "Asesor de trading",
		AgentGoal:         "Calificar leads y agendar llamadas",
	},
	"ecommerce": {
		ProductCategories: []string{"Electrónica", "Ropa", "Hogar", "Deportes"},
		MetadataFields:    []string{"brand", "warranty", "shipping_time"},
		AgentRole:         "Asistente de ventas",
		AgentGoal:         "Ayudar con consultas de productos",
	},
}

func Client() ClientProfile {
	return clientProfile
}

// Industry returns the profile for the configured industry, falling
// back to ecommerce for unknown verticals.
func Industry() IndustryProfile {
	if p, ok := industryProfiles[clientProfile.Industry]; ok {
		return p
	}
	return industryProfiles["ecommerce"]
}
