// Package pdf render físico del comprobante de orden de servicio.
//
// Layout de la página A4 (una página por vía, contenido idéntico salvo el
// rótulo de la vía):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo + Empresa (izq)  │  OS N° + vía (der)         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre, CNPJ/CPF, teléfono, dirección, email      │
//	│  EQUIPO: nombre, n° de serie, fecha de entrada, estado      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descrição | Qtd | Valor Unit. | Total               │
//	│  TOTAL GERAL                                                │
//	│  OBSERVAÇÕES                                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Firmas: Assinatura do Cliente  /  Assinatura do Responsável│
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vitormaquinas/os-master-api/internal/application/ports"
	"github.com/vitormaquinas/os-master-api/internal/domain/printout"
)

var _ ports.PrintoutGenerator = (*MarotoPrintoutGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// moneyPrinter formatea valores con separadores pt-BR ("1.234,56").
var moneyPrinter = message.NewPrinter(language.BrazilianPortuguese)

// MarotoPrintoutGenerator implementa el puerto PrintoutGenerator usando Maroto v2.
type MarotoPrintoutGenerator struct{}

// NewMarotoPrintoutGenerator construye el generador.
func NewMarotoPrintoutGenerator() *MarotoPrintoutGenerator { return &MarotoPrintoutGenerator{} }

// Generate renderiza las dos vías y devuelve los bytes del PDF.
func (g *MarotoPrintoutGenerator) Generate(_ context.Context, doc printout.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ordem de Serviço "+doc.ClientCopy.OrderNumber, true).
		WithAuthor(doc.ClientCopy.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	// Una página por vía.
	for _, c := range []printout.Copy{doc.ClientCopy, doc.CompanyCopy} {
		p := page.New()
		p.Add(headerRows(c)...)
		p.Add(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
		p.Add(clientRows(c)...)
		p.Add(equipmentRows(c)...)
		p.Add(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		p.Add(tableHeaderRow())
		p.Add(tableLineRows(c.Lines)...)
		p.Add(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		p.Add(totalRow(c.GrandTotal))
		p.Add(notesRows(c.Notes)...)
		p.Add(signatureRows(c)...)
		m.AddPages(p)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRows: logo + empresa (izq) y número de OS + vía (der).
func headerRows(c printout.Copy) []core.Row {
	left := col.New(7)
	if logo, ext, ok := decodeLogo(c.Logo); ok {
		left.Add(
			image.NewFromBytes(logo, ext, props.Rect{Percent: 80}),
		)
	} else {
		left.Add(
			text.New(c.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		)
	}

	return []core.Row{
		row.New(20).Add(
			left,
			col.New(5).Add(
				text.New("ORDEM DE SERVIÇO", props.Text{
					Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2,
				}),
				text.New("N° "+c.OrderNumber, props.Text{
					Style: fontstyle.Bold, Size: 13, Align: align.Right, Top: 8,
				}),
				text.New(c.Label, props.Text{
					Size: 8, Align: align.Right, Top: 15, Color: colorGray,
				}),
			),
		),
	}
}

// clientRows: bloque de datos del cliente.
func clientRows(c printout.Copy) []core.Row {
	contact := fmt.Sprintf("CNPJ/CPF: %s   |   Telefone: %s", c.Client.CNPJ, c.Client.Phone)
	if c.Client.Email != "" {
		contact += "   |   Email: " + c.Client.Email
	}
	return []core.Row{
		row.New(16).Add(col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(c.Client.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Endereço: "+c.Client.Address, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
	}
}

// equipmentRows: bloque del equipo.
func equipmentRows(c printout.Copy) []core.Row {
	return []core.Row{
		row.New(14).Add(col.New(12).Add(
			text.New("EQUIPAMENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(c.Equipment.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("N° de série: %s   |   Entrada: %s   |   Status: %s",
				nonEmpty(c.Equipment.SerialNumber, "—"),
				nonEmpty(c.Equipment.EntryDate, "—"),
				c.Equipment.Status,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		)),
	}
}

// tableHeaderRow: cabecera de la tabla de servicios.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Descrição do serviço", 6, align.Left),
		h("Qtd", 1, align.Center),
		h("Valor Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableLineRows: una fila por línea de servicio.
func tableLineRows(lines []printout.Line) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(7).Add(
			col.New(6).Add(text.New(l.Description, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(l.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(formatMoney(l.Total), props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

// totalRow: total general alineado a la derecha.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(2).Add(text.New("TOTAL GERAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
		col.New(3).Add(text.New(formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
		})),
	)
}

// notesRows: observaciones, solo si existen.
func notesRows(notes string) []core.Row {
	if strings.TrimSpace(notes) == "" {
		return nil
	}
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New("OBSERVAÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)),
	}
}

// signatureRows: dos líneas de firma en blanco con sus rótulos.
func signatureRows(c printout.Copy) []core.Row {
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("_________________________________", props.Text{
				Size: 9, Align: align.Center, Top: 8,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 13, Color: colorGray,
			}),
		)
	}
	return []core.Row{
		row.New(8),
		row.New(18).Add(sig(c.Signatures[0]), sig(c.Signatures[1])),
	}
}

// decodeLogo extrae los bytes y la extensión de un data URL base64
// ("data:image/png;base64,..."). Devuelve ok=false si no hay logo o el data
// URL no es una imagen soportada.
func decodeLogo(dataURL string) ([]byte, extension.Type, bool) {
	if dataURL == "" {
		return nil, "", false
	}
	const marker = ";base64,"
	idx := strings.Index(dataURL, marker)
	if !strings.HasPrefix(dataURL, "data:image/") || idx < 0 {
		return nil, "", false
	}
	mime := dataURL[len("data:image/"):idx]
	var ext extension.Type
	switch mime {
	case "png":
		ext = extension.Png
	case "jpeg", "jpg":
		ext = extension.Jpg
	default:
		return nil, "", false
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(marker):])
	if err != nil {
		return nil, "", false
	}
	return raw, ext, true
}

// formatMoney renderiza un decimal como moneda pt-BR: "R$ 1.234,56".
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return moneyPrinter.Sprintf("R$ %.2f", f)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
