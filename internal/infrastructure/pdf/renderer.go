// Package pdf genera el documento de cotización en A4 con Maroto v2.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo o Razón social  │  COTIZACIÓN                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Cliente                      │  N° / Fecha / Vendedor      │
//	│  TABLA: # | Producto | Cant. | P.Unit | Subtotal            │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Condiciones                  │  Firma + sello              │
//	│  QR (opcional)                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"os"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	mconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/application/quotation"
	"github.com/jhoicas/Cotizaciones-api/pkg/config"
)

var _ quotation.Renderer = (*MarotoRenderer)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const (
	defaultFamily = "helvetica"
	customFamily  = "quote-font"
)

// MarotoRenderer implementa quotation.Renderer.
type MarotoRenderer struct {
	company config.CompanyConfig
	opts    config.PDFConfig
	taxRate decimal.Decimal
	family  string
	fonts   *fontFiles
}

type fontFiles struct {
	regular, bold string
}

// NewMarotoRenderer construye el generador. Si se configura una fuente TTF debe existir.
func NewMarotoRenderer(company config.CompanyConfig, opts config.PDFConfig) (*MarotoRenderer, error) {
	r := &MarotoRenderer{
		company: company,
		opts:    opts,
		taxRate: decimal.NewFromFloat(opts.TaxRate),
		family:  defaultFamily,
	}
	if opts.FontPath != "" {
		if _, err := os.Stat(opts.FontPath); err != nil {
			return nil, fmt.Errorf("pdf: fuente %q: %w", opts.FontPath, err)
		}
		bold := opts.BoldFontPath
		if bold == "" {
			bold = opts.FontPath
		} else if _, err := os.Stat(bold); err != nil {
			return nil, fmt.Errorf("pdf: fuente negrita %q: %w", bold, err)
		}
		r.family = customFamily
		r.fonts = &fontFiles{regular: opts.FontPath, bold: bold}
	}
	return r, nil
}

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoRenderer) Render(doc dto.QuoteDocument, opts dto.RenderOptions) ([]byte, error) {
	builder := mconfig.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithTitle("Cotización "+doc.DocumentNumber, true).
		WithAuthor(g.company.Name, true)

	if g.fonts != nil {
		fonts, err := repository.New().
			AddUTF8Font(customFamily, fontstyle.Normal, g.fonts.regular).
			AddUTF8Font(customFamily, fontstyle.Bold, g.fonts.bold).
			Load()
		if err != nil {
			return nil, fmt.Errorf("pdf: cargar fuentes: %w", err)
		}
		builder = builder.WithCustomFonts(fonts)
	}
	builder = builder.WithDefaultFont(&props.Font{Family: g.family, Size: 9})

	m := maroto.New(builder.Build())
	totals := ComputeTotals(doc, g.taxRate)

	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.infoRow(doc))
	m.AddRows(row.New(3))

	m.AddRows(g.tableHeaderRow())
	m.AddRows(g.itemRows(doc.Items)...)

	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(totals))
	m.AddRows(row.New(8))
	m.AddRows(g.footerRow(opts.WithStamp))
	if g.opts.QRContent != "" {
		m.AddRows(row.New(30).Add(
			col.New(10),
			col.New(2).Add(code.NewQr(g.opts.QRContent, props.Rect{Percent: 95, Center: true})),
		))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoRenderer) headerRow() core.Row {
	left := col.New(7)
	if fileExists(g.opts.LogoPath) {
		left.Add(image.NewFromFile(g.opts.LogoPath, props.Rect{Percent: 90, Left: 0}))
	} else {
		left.Add(text.New(g.company.Name, props.Text{
			Family: g.family, Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 3,
		}))
	}
	return row.New(16).Add(
		left,
		col.New(5).Add(text.New("COTIZACIÓN", props.Text{
			Family: g.family, Style: fontstyle.Bold, Size: 18, Align: align.Right, Top: 3,
		})),
	)
}

func (g *MarotoRenderer) infoRow(doc dto.QuoteDocument) core.Row {
	right := func(top float64) props.Text {
		return props.Text{Family: g.family, Size: 9, Align: align.Right, Top: top}
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Cliente:", props.Text{Family: g.family, Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1}),
			text.New(doc.ClientName, props.Text{Family: g.family, Style: fontstyle.Bold, Size: 11, Top: 6}),
		),
		col.New(5).Add(
			text.New("N°: "+doc.DocumentNumber, right(1)),
			text.New("Fecha: "+doc.Date, right(6)),
			text.New("Vendedor: "+nonEmpty(g.company.SalesRep, "-"), right(11)),
		),
	)
}

func (g *MarotoRenderer) tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Family: g.family, Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Producto / especificación", 5, align.Left),
		h("Cant.", 1, align.Center),
		h("P. unitario", 2, align.Right),
		h("Subtotal", 3, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func (g *MarotoRenderer) itemRows(items []dto.QuoteDocumentRow) []core.Row {
	cell := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Family: g.family, Size: 8, Align: a, Top: 1, Left: 1, Right: 1})
	}
	rows := make([]core.Row, 0, len(items))
	for i, it := range items {
		sub := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(cell(fmt.Sprintf("%d", i+1), align.Center)),
			col.New(5).Add(cell(it.Name, align.Left)),
			col.New(1).Add(cell(fmt.Sprintf("%d", it.Quantity), align.Center)),
			col.New(2).Add(cell(FormatAmount(it.UnitPrice), align.Right)),
			col.New(3).Add(cell(FormatAmount(sub), align.Right)),
		))
	}
	return rows
}

func (g *MarotoRenderer) totalsRow(t Totals) core.Row {
	label := func(s string, top float64, bold bool) core.Component {
		p := props.Text{Family: g.family, Size: 9, Align: align.Right, Right: 2, Top: top}
		if bold {
			p.Style, p.Size, p.Color = fontstyle.Bold, 10, colorPrimary
		}
		return text.New(s, p)
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:", 0, false),
			label(fmt.Sprintf("Impuesto (%s%%):", g.taxRate.Mul(decimal.NewFromInt(100)).String()), 5, false),
			label("TOTAL:", 11, true),
		),
		col.New(3).Add(
			label(FormatAmount(t.Subtotal), 0, false),
			label(FormatAmount(t.Tax), 5, false),
			label(FormatAmount(t.Total), 11, true),
		),
	)
}

func (g *MarotoRenderer) footerRow(withStamp bool) core.Row {
	note := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Family: g.family, Size: 8, Top: top, Color: colorGray})
	}
	terms := col.New(6).Add(
		text.New("Condiciones:", props.Text{Family: g.family, Style: fontstyle.Bold, Size: 9}),
		note(fmt.Sprintf("1. Validez de la cotización: %d días.", g.opts.ValidityDays), 6),
	)
	if g.opts.DeliveryNote != "" {
		terms.Add(note("2. "+g.opts.DeliveryNote, 11))
	}

	sign := col.New(6).Add(
		text.New(g.company.Name, props.Text{Family: g.family, Style: fontstyle.Bold, Size: 10}),
		text.New("Representante: "+nonEmpty(g.company.Representative, "-"), props.Text{Family: g.family, Size: 9, Top: 6}),
		text.New("NIT: "+nonEmpty(g.company.TaxID, "-"), props.Text{Family: g.family, Size: 9, Top: 11}),
	)
	if withStamp && fileExists(g.opts.StampPath) {
		sign.Add(image.NewFromFile(g.opts.StampPath, props.Rect{Percent: 60, Top: 14, Left: 20}))
	}
	return row.New(45).Add(terms, sign)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
