// Package demo fabricates the analytics and inbox data the dashboard
// renders. Nothing here touches storage; every call invents plausible
// numbers with small variations so the UI looks alive.
package demo

import (
	"fmt"
	"math/rand"
	"net/url"
	"sort"
	"strings"
	"time"
)

type Stats struct {
	TotalConversations int    `json:"totalConversations"`
	QualifiedLeads     int    `json:"leadsCalificados"`
	BookedCalls        int    `json:"citasAgendadas"`
	ConversionRate     string `json:"conversionRate"`
	ActiveNow          int    `json:"activeNow"`
}

// GenerateStats returns dashboard metrics that drift slightly on every
// call around fixed base numbers.
func GenerateStats() Stats {
	return Stats{
		TotalConversations: 1248 + rand.Intn(5),
		QualifiedLeads:     342 + rand.Intn(3),
		BookedCalls:        58 + rand.Intn(2),
		ConversionRate:     fmt.Sprintf("%.1f", 24.5+(rand.Float64()-0.5)*0.5),
		ActiveNow:          8 + rand.Intn(15),
	}
}

type ConversationSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Platform    string `json:"platform"`
	LastMessage string `json:"lastMessage"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Avatar      string `json:"avatar"`
}

// GenerateConversations returns the fixed-cast conversation list shown
// on the dashboard landing page.
func GenerateConversations() []ConversationSummary {
	names := []string{"María González", "Carlos Mendoza", "Ana Silva", "Luis Ramírez", "Sofía Torres"}
	platforms := []string{"instagram", "facebook", "whatsapp"}
	messages := []string{
		"Hola, vi el video de Sebas...",
		"Me interesa el curso de trading",
		"Cuánto cuesta el curso?",
		"Ya estoy listo para empezar",
		"Tengo experiencia en forex",
	}

	out := make([]ConversationSummary, len(names))
	for i, name := range names {
		status := "active"
		if rand.Float64() > 0.5 {
			status = "qualified"
		}
		out[i] = ConversationSummary{
			ID:          i + 1,
			Name:        name,
			Platform:    platforms[i%3],
			LastMessage: messages[i],
			Status:      status,
			Timestamp:   fmt.Sprintf("%d min ago", rand.Intn(30)+1),
			Avatar:      "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random",
		}
	}
	return out
}

type Lead struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Capital    string `json:"capital"`
	Experience string `json:"experience"`
	Status     string `json:"status"`
}

func GenerateLeads() []Lead {
	return []Lead{
		{Name: "Pedro Martínez", Score: 85, Capital: "$500", Experience: "Principiante", Status: "qualified"},
		{Name: "Laura Benítez", Score: 92, Capital: "$1000", Experience: "Intermedio", Status: "qualified"},
		{Name: "Jorge Villalba", Score: 78, Capital: "$300", Experience: "Principiante", Status: "qualified"},
	}
}

type ContactColor struct {
	Background string `json:"bg"`
	Text       string `json:"text"`
}

type ChannelContact struct {
	SubscriberID      string            `json:"subscriber_id"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	Color             ContactColor      `json:"color"`
	Phone             string            `json:"phone,omitempty"`
	InstagramID       string            `json:"instagram_id,omitempty"`
	WhatsappPhone     string            `json:"whatsapp_phone,omitempty"`
	Email             string            `json:"email,omitempty"`
	LastInteractionAt time.Time         `json:"last_interaction_at"`
	Status            string            `json:"status"`
	CustomFields      map[string]string `json:"custom_fields"`
	Tags              []string          `json:"tags"`
	LeadScore         int               `json:"leadScore"`
	Temperature       string            `json:"temperature"`
}

type ChannelMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"` // user, ai, agent
	Timestamp time.Time `json:"timestamp"`
	Seen      bool      `json:"seen"`
}

type LastMessage struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
}

type ChannelConversation struct {
	ID          string           `json:"id"`
	Platform    string           `json:"platform"`
	Status      string           `json:"status"`
	UnreadCount int              `json:"unreadCount"`
	AIEnabled   bool             `json:"aiEnabled"`
	AssignedTo  string           `json:"assignedTo,omitempty"`
	Contact     ChannelContact   `json:"contact"`
	LastMessage LastMessage      `json:"lastMessage"`
	Messages    []ChannelMessage `json:"messages"`
}

// ValidChannel reports whether the inbox knows the channel name.
func ValidChannel(channel string) bool {
	switch channel {
	case "instagram", "whatsapp", "facebook":
		return true
	}
	return false
}

var (
	firstNames = []string{"María", "Carlos", "Ana", "Luis", "Rosa", "Pedro", "Carmen", "José", "Laura", "Miguel", "Sofía", "Diego", "Patricia", "Fernando", "Verónica", "Héctor", "Lorena"}
	lastNames  = []string{"González", "Rodríguez", "Martínez", "López", "Fernández", "Sánchez", "Ramírez", "Torres", "Flores", "Benítez", "Cardozo", "Cabrera", "Franco", "Mendoza", "Silva"}

	channelMessages = map[string][]string{
		"instagram": {
			"Hola! Me interesa el anillo de compromiso",
			"Vi tu publicación y quiero saber más",
			"Tienen aretes de plata?",
			"Cuál es el precio del collar?",
			"Hacen delivery a Asunción?",
			"Me encantó el diseño que subieron",
			"Quisiera ver más modelos",
			"Tienen disponibilidad para esta semana?",
		},
		"whatsapp": {
			"Buenos días, consulta por precios",
			"Hola, quiero hacer un pedido",
			"Me pasas el catálogo completo?",
			"Cuánto cuesta el envío?",
			"Tienen stock del anillo de oro?",
			"Quisiera agendar una cita",
			"Me interesa la pulsera",
			"Aceptan tarjetas de crédito?",
		},
		"facebook": {
			"Hola! Cómo están?",
			"Me interesa un regalo para mi novia",
			"Tienen tienda física?",
			"Cuáles son los métodos de pago?",
			"Me gustaría ver las alianzas",
			"Hacen diseños personalizados?",
			"Cuánto demora el delivery?",
			"Tienen garantía los productos?",
		},
	}

	contactColors = []ContactColor{
		{"#FF6B6B", "#FFFFFF"},
		{"#4ECDC4", "#FFFFFF"},
		{"#45B7D1", "#FFFFFF"},
		{"#96CEB4", "#2D3436"},
		{"#6C5CE7", "#FFFFFF"},
		{"#00B894", "#FFFFFF"},
		{"#FD79A8", "#FFFFFF"},
		{"#FDCB6E", "#2D3436"},
		{"#A29BFE", "#FFFFFF"},
		{"#74B9FF", "#FFFFFF"},
	}
)

// colorFor deterministically assigns a palette color per contact name,
// so the same contact always renders with the same avatar color.
func colorFor(firstName, lastName string) ContactColor {
	name := firstName + lastName
	hash := 0
	for _, r := range name {
		hash = int(r) + ((hash << 5) - hash)
	}
	if hash < 0 {
		hash = -hash
	}
	return contactColors[hash%len(contactColors)]
}

func weightedStatus() string {
	options := []string{"nuevo", "en_progreso", "calificado", "cerrado"}
	weights := []float64{0.4, 0.3, 0.2, 0.1}
	r := rand.Float64()
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return options[i]
		}
	}
	return options[0]
}

func temperatureFor(score int) string {
	switch {
	case score >= 70:
		return "hot"
	case score >= 40:
		return "warm"
	default:
		return "cold"
	}
}

func paraguayanPhone() string {
	return fmt.Sprintf("+595%d%07d", 9+rand.Intn(2), rand.Intn(10000000))
}

func randomTags() []string {
	all := []string{"lead_caliente", "compromiso", "consulta", "urgente", "vip", "delivery"}
	rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return all[:rand.Intn(3)+1]
}

// GenerateChannelConversations fabricates an inbox for one channel,
// most recently active first.
func GenerateChannelConversations(channel string, count int) []ChannelConversation {
	examples := channelMessages[channel]
	now := time.Now()

	conversations := make([]ChannelConversation, 0, count)
	for i := 0; i < count; i++ {
		firstName := firstNames[rand.Intn(len(firstNames))]
		lastName := lastNames[rand.Intn(len(lastNames))]

		leadScore := rand.Intn(100)
		status := weightedStatus()

		numMessages := 5 + rand.Intn(5)
		messages := make([]ChannelMessage, 0, numMessages)
		for j := 0; j < numMessages; j++ {
			isUser := j%2 == 0
			var text, sender string
			switch {
			case isUser:
				text = examples[rand.Intn(len(examples))]
				sender = "user"
			case j == 1:
				text = fmt.Sprintf("¡Hola %s! ¿Cómo estás? Soy Jessica de Silver Line. ¿En qué puedo ayudarte hoy?", firstName)
				sender = replySender()
			default:
				replies := []string{"Perfecto! Te cuento que...", "Claro, con gusto te ayudo", "Genial, mira...", "Por supuesto!"}
				text = replies[rand.Intn(len(replies))]
				sender = replySender()
			}
			messages = append(messages, ChannelMessage{
				ID:        fmt.Sprintf("msg_%d_%d", i, j),
				Text:      text,
				Sender:    sender,
				Timestamp: now.Add(-time.Duration(numMessages-j) * 5 * time.Minute),
				Seen:      true,
			})
		}

		contact := ChannelContact{
			SubscriberID:      fmt.Sprintf("%d", 7000000000+i),
			FirstName:         firstName,
			LastName:          lastName,
			Color:             colorFor(firstName, lastName),
			LastInteractionAt: now.Add(-time.Duration(rand.Intn(48*3600)) * time.Second),
			Status:            "active",
			CustomFields: map[string]string{
				"presupuesto":      pick("bajo", "medio", "alto"),
				"producto_interes": pick("anillo", "collar", "pulsera", "aretes", "alianzas"),
				"urgencia":         pick("baja", "media", "alta"),
				"ciudad":           pick("Asunción", "Ciudad del Este", "Encarnación"),
			},
			Tags:        randomTags(),
			LeadScore:   leadScore,
			Temperature: temperatureFor(leadScore),
		}

		switch channel {
		case "whatsapp":
			contact.Phone = paraguayanPhone()
			contact.WhatsappPhone = paraguayanPhone()
		case "instagram":
			contact.InstagramID = fmt.Sprintf("%d", 17841400000000000+i)
		}
		if rand.Float64() > 0.7 {
			contact.Email = strings.ToLower(firstName) + "." + strings.ToLower(lastName) + "@gmail.com"
		}

		unread := 0
		if rand.Float64() > 0.7 {
			unread = rand.Intn(5) + 1
		}
		assignedTo := ""
		if rand.Float64() > 0.7 {
			assignedTo = "agent_1"
		}

		conversations = append(conversations, ChannelConversation{
			ID:          fmt.Sprintf("conv_%s_%d", channel, i+1),
			Platform:    channel,
			Status:      status,
			UnreadCount: unread,
			AIEnabled:   rand.Float64() > 0.4,
			AssignedTo:  assignedTo,
			Contact:     contact,
			LastMessage: LastMessage{
				Text:      examples[rand.Intn(len(examples))],
				Timestamp: now.Add(-time.Duration(rand.Intn(2*3600)) * time.Second),
				Sender:    "user",
			},
			Messages: messages,
		})
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].Contact.LastInteractionAt.After(conversations[j].Contact.LastInteractionAt)
	})
	return conversations
}

func replySender() string {
	if rand.Float64() > 0.5 {
		return "ai"
	}
	return "agent"
}

func pick(options ...string) string {
	return options[rand.Intn(len(options))]
}
