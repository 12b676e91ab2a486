package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de servicio. Los valores son los strings en portugués
// que persiste el sistema legado; cambiarlos rompería los snapshots ya
// exportados y la sincronización entre máquinas.
const (
	StatusPendente   = "Pendente"
	StatusEmExecucao = "Em Execução"
	StatusConcluida  = "Concluída"
	StatusCancelada  = "Cancelada"
)

// AllStatuses lista los estados válidos en el orden de la UI legada.
var AllStatuses = []string{StatusPendente, StatusEmExecucao, StatusConcluida, StatusCancelada}

// ValidStatus indica si s es un estado conocido.
func ValidStatus(s string) bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ClientData datos del cliente embebidos en la orden (no es una entidad aparte).
type ClientData struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"` // CNPJ o CPF
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email,omitempty"`
}

// ServiceItem una línea de servicio de la orden.
type ServiceItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Subtotal devuelve quantity × unitPrice de la línea.
func (s ServiceItem) Subtotal() decimal.Decimal {
	return s.Quantity.Mul(s.UnitPrice)
}

// ServiceOrder una orden de servicio. Los tags JSON replican el formato del
// snapshot legado (camelCase), que es también el formato de sincronización.
//
// Invariante: TotalValue == Σ Services[i].Quantity × Services[i].UnitPrice
// después de cada guardado; lo recalcula siempre el caso de uso, nunca se
// edita directamente.
type ServiceOrder struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"orderNumber"` // "OS-#####", inmutable tras la creación
	Client        ClientData      `json:"client"`
	EquipmentName string          `json:"equipmentName"`
	SerialNumber  string          `json:"serialNumber"`
	EntryDate     string          `json:"entryDate"` // fecha calendario YYYY-MM-DD
	Services      []ServiceItem   `json:"services"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	CreatedAt     time.Time       `json:"createdAt"` // inmutable tras la creación
	UpdatedAt     time.Time       `json:"updatedAt"` // se refresca en cada guardado
}

// ComputeTotal suma quantity × unitPrice de todas las líneas.
func (o ServiceOrder) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range o.Services {
		total = total.Add(s.Subtotal())
	}
	return total
}

// ShortNumber devuelve el sufijo numérico después del primer "-" del
// OrderNumber ("OS-10234" → "10234"); si no hay guion devuelve el número entero.
func (o ServiceOrder) ShortNumber() string {
	for i := 0; i < len(o.OrderNumber); i++ {
		if o.OrderNumber[i] == '-' {
			return o.OrderNumber[i+1:]
		}
	}
	return o.OrderNumber
}
