package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/turingco/quotation/internal/clock"
	"github.com/turingco/quotation/internal/config"
	"github.com/turingco/quotation/internal/hangul"
	"github.com/turingco/quotation/internal/observability"
	"github.com/turingco/quotation/internal/period"
	"github.com/turingco/quotation/internal/pricing"
	"github.com/turingco/quotation/internal/quotation/domain"
	"github.com/turingco/quotation/internal/quotation/repository"
	"github.com/turingco/quotation/internal/render"
	sequencedomain "github.com/turingco/quotation/internal/sequence/domain"
	"github.com/turingco/quotation/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	db  *gorm.DB
	log *zap.Logger

	genID     *snowflake.Node
	clock     clock.Clock
	repo      domain.Repository
	allocator sequencedomain.Allocator
	renderer  render.Renderer
	metrics   *observability.Metrics

	company    config.CompanyConfig
	vatMode    pricing.VATMode
	periodMode string
}

type ServiceParam struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Config    *config.Config
	Allocator sequencedomain.Allocator
	Renderer  render.Renderer
	Metrics   *observability.Metrics `optional:"true"`
}

func NewService(p ServiceParam) domain.Service {
	vatMode := pricing.VATModeInclusive
	if p.Config.Billing.VATMode == string(pricing.VATModeItemized) {
		vatMode = pricing.VATModeItemized
	}

	return &Service{
		db:  p.DB,
		log: p.Log.Named("quotation.service"),

		genID:     p.GenID,
		clock:     p.Clock,
		repo:      repository.NewRepository(),
		allocator: p.Allocator,
		renderer:  p.Renderer,
		metrics:   p.Metrics,

		company:    p.Config.Company,
		vatMode:    vatMode,
		periodMode: p.Config.Billing.PeriodMode,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Quotation, error) {
	q, err := s.buildQuotation(req)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Insert(ctx, tx, q)
	}); err != nil {
		return nil, fmt.Errorf("insert quotation: %w", err)
	}

	s.log.Info("quotation created",
		zap.String("id", q.ID.String()),
		zap.String("school", q.SchoolName))
	return q, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Quotation, error) {
	qid, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	q, err := s.repo.FindByID(ctx, s.db, qid)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return q, nil
}

func (s *Service) List(ctx context.Context, opts domain.ListOptions) (*domain.ListResult, error) {
	limit := pagination.ClampPageSize(opts.PageSize)
	offset := pagination.DecodeToken(opts.PageToken)

	// One extra row decides whether a next page exists.
	rows, err := s.repo.List(ctx, s.db, opts, offset, limit+1)
	if err != nil {
		return nil, err
	}

	result := &domain.ListResult{
		Quotations: rows,
		PageInfo:   pagination.PageInfo{PageSize: limit},
	}
	if len(rows) > limit {
		result.Quotations = rows[:limit]
		result.PageInfo.NextPageToken = pagination.EncodeToken(offset + limit)
	}
	return result, nil
}

func (s *Service) ComputeAmounts(ctx context.Context, id string) (*domain.AmountsResult, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	result := s.price(q)
	return &result, nil
}

func (s *Service) Issue(ctx context.Context, id string) (*domain.IssueResult, error) {
	q, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now(ctx)

	// The sequence increment commits before rendering. A failed render
	// leaves a gap in the sequence, which is acceptable; a duplicate
	// number is not.
	number, err := s.allocator.Next(ctx, now)
	if err != nil {
		return nil, err
	}

	amounts := s.price(q)

	pdf, err := s.renderer.Render(render.RenderInput{
		DocumentNumber: number,
		IssueDate:      now,
		Company: render.CompanyView{
			Name:        s.company.Name,
			BankName:    s.company.BankName,
			BankAccount: s.company.BankAccount,
			BankHolder:  s.company.BankHolder,
		},
		Quotation: render.QuotationView{
			SchoolName:   q.SchoolName,
			Recipient:    q.Recipient,
			ItemName:     q.ItemName,
			PlanType:     q.PlanType,
			Headcount:    q.Headcount,
			ServiceStart: q.ServiceStart,
			ServiceEnd:   q.ServiceEnd,
			UnitPrice:    q.UnitPrice,
			Note:         q.Note,
		},
		Period:      amounts.Period,
		Amounts:     amounts.Amounts,
		VATMode:     amounts.VATMode,
		TotalPhrase: amounts.TotalPhrase,
	})
	if err != nil {
		s.log.Error("quotation render failed, document number consumed",
			zap.String("id", q.ID.String()),
			zap.String("document_number", number),
			zap.Error(err))
		return nil, err
	}

	q.LastDocumentNumber = &number
	q.LastIssuedAt = &now
	q.UpdatedAt = now
	if err := s.repo.UpdateIssueState(ctx, s.db, q); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.DocumentsIssued.Inc()
	}
	s.log.Info("quotation issued",
		zap.String("id", q.ID.String()),
		zap.String("document_number", number))

	return &domain.IssueResult{
		DocumentNumber: number,
		IssuedAt:       now,
		Amounts:        amounts,
		PDF:            pdf,
	}, nil
}

func (s *Service) price(q *domain.Quotation) domain.AmountsResult {
	p := s.servicePeriod(q)
	amounts := pricing.Quote(q.Headcount, q.UnitPrice, p, q.PricingItems(), s.vatMode)

	result := domain.AmountsResult{
		Period:  p,
		Amounts: amounts,
		VATMode: s.vatMode,
	}
	if amounts.Total >= 0 {
		result.TotalPhrase = hangul.MoneyPhrase(amounts.Total)
	}
	return result
}

func (s *Service) servicePeriod(q *domain.Quotation) period.Period {
	p := period.Calculate(q.ServiceStart, q.ServiceEnd)
	if s.periodMode == "calendar" {
		p.Months = period.CalendarMonths(q.ServiceStart, q.ServiceEnd)
		p.LeftoverDays = 0
	}
	return p
}

func (s *Service) buildQuotation(req domain.CreateRequest) (*domain.Quotation, error) {
	schoolName := strings.TrimSpace(req.SchoolName)
	if schoolName == "" {
		return nil, domain.ErrInvalidSchoolName
	}
	recipient := strings.TrimSpace(req.Recipient)
	if recipient == "" {
		return nil, domain.ErrInvalidRecipient
	}

	itemName := strings.TrimSpace(req.ItemName)
	if itemName == "" {
		itemName = s.company.DefaultItemName
	}

	planType := strings.TrimSpace(req.PlanType)
	if planType == "" {
		planType = domain.PlanTypes[0]
	}
	if !validPlanType(planType) {
		return nil, domain.ErrInvalidPlanType
	}

	if req.Headcount < 0 {
		return nil, domain.ErrInvalidHeadcount
	}
	if req.UnitPrice < 0 {
		return nil, domain.ErrInvalidUnitPrice
	}

	start, err := time.ParseInLocation(dateLayout, req.ServiceStart, time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidServiceDate
	}
	end, err := time.ParseInLocation(dateLayout, req.ServiceEnd, time.UTC)
	if err != nil {
		return nil, domain.ErrInvalidServiceDate
	}
	if end.Before(start) {
		return nil, domain.ErrInvalidServicePeriod
	}

	q := &domain.Quotation{
		ID:           s.genID.Generate(),
		SchoolName:   schoolName,
		Recipient:    recipient,
		ItemName:     itemName,
		PlanType:     planType,
		Headcount:    req.Headcount,
		ServiceStart: start,
		ServiceEnd:   end,
		UnitPrice:    req.UnitPrice,
		Note:         req.Note,
	}

	for i, d := range req.Discounts {
		label := strings.TrimSpace(d.Label)
		if label == "" {
			return nil, domain.ErrInvalidDiscountLabel
		}
		if d.Amount < 0 {
			return nil, domain.ErrInvalidDiscountAmount
		}
		kind := d.Kind
		if kind == "" {
			kind = pricing.DiscountKindFixed
		}
		if kind != pricing.DiscountKindFixed && kind != pricing.DiscountKindPercentage {
			return nil, domain.ErrInvalidDiscountKind
		}
		q.Discounts = append(q.Discounts, domain.DiscountLine{
			ID:          s.genID.Generate(),
			QuotationID: q.ID,
			Position:    i,
			Label:       label,
			Amount:      d.Amount,
			Kind:        kind,
		})
	}

	return q, nil
}

func validPlanType(planType string) bool {
	for _, pt := range domain.PlanTypes {
		if pt == planType {
			return true
		}
	}
	return false
}

func parseID(id string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(id))
}
