// Package printout deriva la representación imprimible de una orden de
// servicio: dos vías con el mismo contenido ("Via do Cliente" y
// "Via da Empresa", los rótulos del formulario legado). Es lógica pura de
// dominio, sin estado ni I/O; el render físico (PDF) vive en infrastructure.
package printout

import (
	"github.com/shopspring/decimal"
	"github.com/vitormaquinas/os-master-api/internal/domain/entity"
)

// Rótulos de las dos vías y de las líneas de firma.
const (
	ClientCopyLabel  = "Via do Cliente"
	CompanyCopyLabel = "Via da Empresa"

	SignatureClient      = "Assinatura do Cliente"
	SignatureResponsible = "Assinatura do Responsável"
)

// Line una línea de servicio ya proyectada, con su total calculado.
type Line struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// Copy una vía imprimible de la orden. Las dos vías son idénticas salvo Label.
type Copy struct {
	Label       string
	CompanyName string
	Logo        string // data URL base64; vacío si la empresa no tiene logo
	OrderNumber string // sufijo numérico después del primer "-"
	Client      entity.ClientData
	Equipment   EquipmentBlock
	Lines       []Line
	GrandTotal  decimal.Decimal
	Notes       string
	Signatures  [2]string // dos líneas de firma en blanco con su rótulo
}

// EquipmentBlock bloque del equipo tal como aparece en la impresión.
type EquipmentBlock struct {
	Name         string
	SerialNumber string
	EntryDate    string
	Status       string
}

// Document las dos vías de una orden.
type Document struct {
	ClientCopy  Copy
	CompanyCopy Copy
}

// Compose deriva el documento imprimible de una orden y la configuración de la
// empresa. Función pura: mismo input, mismo output; los campos opcionales
// ausentes (logo, email) quedan vacíos.
func Compose(order entity.ServiceOrder, settings entity.CompanySettings) Document {
	base := Copy{
		CompanyName: settings.Name,
		Logo:        settings.Logo,
		OrderNumber: order.ShortNumber(),
		Client:      order.Client,
		Equipment: EquipmentBlock{
			Name:         order.EquipmentName,
			SerialNumber: order.SerialNumber,
			EntryDate:    order.EntryDate,
			Status:       order.Status,
		},
		Lines:      composeLines(order.Services),
		GrandTotal: order.ComputeTotal(),
		Notes:      order.Notes,
		Signatures: [2]string{SignatureClient, SignatureResponsible},
	}

	clientCopy := base
	clientCopy.Label = ClientCopyLabel
	companyCopy := base
	companyCopy.Label = CompanyCopyLabel

	return Document{ClientCopy: clientCopy, CompanyCopy: companyCopy}
}

func composeLines(items []entity.ServiceItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Subtotal(),
		})
	}
	return lines
}
