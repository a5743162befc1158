package agent

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/setterlabs/crm-backend/internal/models"
)

// Context blocks are appended to the system prompt in Spanish, the
// language the demo agents sell in.

var pricePrinter = message.NewPrinter(language.MustParse("es-PY"))

func formatPrice(v float64) string {
	return pricePrinter.Sprintf("%.0f", v)
}

func currencySuffix(currency string) string {
	if currency == "USD" {
		return "USD"
	}
	return "Gs"
}

// BuildProductContext renders matched products as a system-prompt
// block. Pure formatting: the same input always yields the same text.
// An empty product list yields no block at all.
func BuildProductContext(products []models.Product) string {
	if len(products) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n# PRODUCTOS ENCONTRADOS EN INVENTARIO:\n")
	b.WriteString("(Mostrá estos productos al cliente con entusiasmo)\n\n")

	for _, p := range products {
		if p.Category != nil && p.Category.Name != "" {
			b.WriteString("📍 " + p.Category.Name + "\n")
		}
		b.WriteString("• " + p.Name + "\n")
		b.WriteString("  💰 Precio: " + formatPrice(p.Price) + " " + currencySuffix(p.Currency) + "\n")
		b.WriteString("  📦 Stock: " + strconv.Itoa(p.StockQuantity) + " disponibles\n")

		if p.SellerPitch != "" {
			b.WriteString("  💡 Info: " + p.SellerPitch + "\n")
		}
		if len(p.Tags) > 0 {
			b.WriteString("  🏷️ Tags: " + strings.Join(p.Tags, ", ") + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(`IMPORTANTE: Mencioná estos productos y decí "Te envío las fotos". Las imágenes se enviarán automáticamente.` + "\n")
	return b.String()
}

// BuildZoneContext renders the delivery zone list. Zero zones yield no
// block and no heading.
func BuildZoneContext(zones []models.DeliveryZone) string {
	if len(zones) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n# ZONAS DE DELIVERY:\n")
	for _, z := range zones {
		b.WriteString("- " + z.ZoneName + ": " + formatPrice(z.Price) + " Gs\n")
	}
	return b.String()
}
