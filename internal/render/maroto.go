package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	marotoconfig "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	appconfig "github.com/turingco/quotation/internal/config"
	"github.com/turingco/quotation/internal/pricing"
	"go.uber.org/zap"
)

const fontFamily = "hangul"

var discountColor = &props.Color{Red: 200, Green: 30, Blue: 30}

type marotoRenderer struct {
	log   *zap.Logger
	fonts []*entity.CustomFont
}

func NewRenderer(cfg *appconfig.Config, log *zap.Logger) Renderer {
	r := &marotoRenderer{log: log.Named("render.maroto")}

	path := cfg.Render.FontPath
	fonts, err := repository.New().
		AddUTF8Font(fontFamily, fontstyle.Normal, path).
		AddUTF8Font(fontFamily, fontstyle.Bold, path).
		AddUTF8Font(fontFamily, fontstyle.Italic, path).
		AddUTF8Font(fontFamily, fontstyle.BoldItalic, path).
		Load()
	if err != nil {
		r.log.Warn("hangul font unavailable, falling back to builtin font",
			zap.String("path", path), zap.Error(err))
		return r
	}
	r.fonts = fonts
	return r
}

func (r *marotoRenderer) Render(input RenderInput) ([]byte, error) {
	builder := marotoconfig.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15)
	if r.fonts != nil {
		builder = builder.
			WithCustomFonts(r.fonts).
			WithDefaultFont(&props.Font{Family: fontFamily})
	}

	m := maroto.New(builder.Build())

	r.addHeader(m, input)
	r.addPartyBlock(m, input)
	r.addItemTable(m, input)
	r.addAmountSummary(m, input)
	r.addNote(m, input)
	r.addBankFooter(m, input)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate quotation pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *marotoRenderer) addHeader(m core.Maroto, input RenderInput) {
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New("견 적 서", props.Text{
					Size:  20,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("문서번호: %s", input.DocumentNumber), props.Text{
					Size:  9,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("작성일자: %s", koreanDate(input.IssueDate)), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			),
		),
		row.New(3).Add(col.New(12).Add(line.New())),
	)
}

func (r *marotoRenderer) addPartyBlock(m core.Maroto, input RenderInput) {
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("수신: %s 귀하", input.Quotation.Recipient), props.Text{Size: 10}),
			),
		),
		row.New(7).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("학교명: %s", input.Quotation.SchoolName), props.Text{Size: 10}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("아래와 같이 견적합니다. (%s)", input.TotalPhrase), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
				}),
			),
		),
	)
}

func (r *marotoRenderer) addItemTable(m core.Maroto, input RenderInput) {
	q := input.Quotation

	periodLabel := fmt.Sprintf("%d개월 (%s ~ %s)",
		input.Period.Months,
		q.ServiceStart.Format("2006-01-02"),
		q.ServiceEnd.Format("2006-01-02"))
	if input.Period.LeftoverDays > 0 {
		periodLabel = fmt.Sprintf("%d개월 %d일 (%s ~ %s)",
			input.Period.Months, input.Period.LeftoverDays,
			q.ServiceStart.Format("2006-01-02"),
			q.ServiceEnd.Format("2006-01-02"))
	}

	r.addLabelRow(m, "항목명", q.ItemName, nil)
	r.addLabelRow(m, "플랜 유형", q.PlanType, nil)
	r.addLabelRow(m, "1인당 월 단가", formatWon(q.UnitPrice)+"원", nil)
	r.addLabelRow(m, "인원수", strconv.Itoa(q.Headcount)+"명", nil)
	r.addLabelRow(m, "계약기간", periodLabel, nil)
}

func (r *marotoRenderer) addAmountSummary(m core.Maroto, input RenderInput) {
	a := input.Amounts

	for _, d := range a.Discounts {
		r.addLabelRow(m, d.Label, "-"+formatWon(d.Amount)+"원", discountColor)
	}

	if input.VATMode == pricing.VATModeItemized {
		r.addLabelRow(m, "공급가액", formatWon(a.SupplyAmount)+"원", nil)
		r.addLabelRow(m, "부가세", formatWon(a.VAT)+"원", nil)
		r.addLabelRow(m, "총 금액", formatWon(a.Total)+"원", nil)
		return
	}
	r.addLabelRow(m, "총 금액 (부가세 포함)", formatWon(a.Total)+"원", nil)
}

func (r *marotoRenderer) addLabelRow(m core.Maroto, label, value string, valueColor *props.Color) {
	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(
				text.New(label, props.Text{Size: 10, Style: fontstyle.Bold}),
			),
			col.New(8).Add(
				text.New(value, props.Text{Size: 10, Align: align.Right, Color: valueColor}),
			),
		),
	)
}

func (r *marotoRenderer) addNote(m core.Maroto, input RenderInput) {
	if input.Quotation.Note == "" {
		return
	}
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("비고", props.Text{Size: 10, Style: fontstyle.Bold, Top: 3}),
			),
		),
		row.New(24).Add(
			col.New(12).Add(
				text.New(input.Quotation.Note, props.Text{Size: 9}),
			),
		),
	)
}

func (r *marotoRenderer) addBankFooter(m core.Maroto, input RenderInput) {
	c := input.Company
	m.AddRows(
		row.New(3).Add(col.New(12).Add(line.New())),
		row.New(6).Add(
			col.New(12).Add(
				text.New("입금 계좌 안내", props.Text{Size: 9, Style: fontstyle.Bold}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("- 은행명: %s", c.BankName), props.Text{Size: 9}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("- 계좌번호: %s", c.BankAccount), props.Text{Size: 9}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("- 예금주: %s", c.BankHolder), props.Text{Size: 9}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(c.Name, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Top: 3}),
			),
		),
	)
}

func koreanDate(t time.Time) string {
	return fmt.Sprintf("%d년 %02d월 %02d일", t.Year(), int(t.Month()), t.Day())
}

// formatWon inserts thousands separators; amounts may be negative when
// discounts exceed the base amount.
func formatWon(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s
}
