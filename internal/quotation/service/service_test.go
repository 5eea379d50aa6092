package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turingco/quotation/internal/clock"
	"github.com/turingco/quotation/internal/config"
	"github.com/turingco/quotation/internal/pricing"
	"github.com/turingco/quotation/internal/quotation/domain"
	"github.com/turingco/quotation/internal/render"
	sequencedomain "github.com/turingco/quotation/internal/sequence/domain"
	sequenceservice "github.com/turingco/quotation/internal/sequence/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubRenderer struct {
	fail  bool
	calls int
}

func (r *stubRenderer) Render(render.RenderInput) ([]byte, error) {
	r.calls++
	if r.fail {
		return nil, errors.New("render exploded")
	}
	return []byte("%PDF-stub"), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Billing: config.BillingConfig{VATMode: "inclusive", PeriodMode: "day_count"},
		Company: config.CompanyConfig{
			Name:            "(주)튜링",
			DefaultItemName: "수학대왕 AI코스웨어 이용권",
			BankName:        "국민은행",
			BankAccount:     "810137-04-015409",
			BankHolder:      "(주)튜링",
		},
	}
}

func newTestService(t *testing.T, cfg *config.Config, renderer render.Renderer) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Quotation{},
		&domain.DiscountLine{},
		&sequencedomain.DocumentSequence{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return NewService(ServiceParam{
		DB:        db,
		Log:       zap.NewNop(),
		GenID:     node,
		Clock:     clock.Fixed(time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)),
		Config:    cfg,
		Allocator: sequenceservice.NewService(sequenceservice.ServiceParam{DB: db, Log: zap.NewNop()}),
		Renderer:  renderer,
	})
}

func createRequest() domain.CreateRequest {
	return domain.CreateRequest{
		SchoolName:   "서울고등학교",
		Recipient:    "김선생",
		Headcount:    50,
		ServiceStart: "2025-05-01",
		ServiceEnd:   "2025-07-31",
		UnitPrice:    9900,
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := newTestService(t, testConfig(), &stubRenderer{})

	q, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, "수학대왕 AI코스웨어 이용권", q.ItemName)
	assert.Equal(t, "기본형", q.PlanType)
	assert.NotZero(t, q.ID)
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t, testConfig(), &stubRenderer{})
	ctx := context.Background()

	cases := []struct {
		name    string
		mutate  func(*domain.CreateRequest)
		wantErr error
	}{
		{"missing school", func(r *domain.CreateRequest) { r.SchoolName = " " }, domain.ErrInvalidSchoolName},
		{"missing recipient", func(r *domain.CreateRequest) { r.Recipient = "" }, domain.ErrInvalidRecipient},
		{"unknown plan", func(r *domain.CreateRequest) { r.PlanType = "프리미엄" }, domain.ErrInvalidPlanType},
		{"negative headcount", func(r *domain.CreateRequest) { r.Headcount = -1 }, domain.ErrInvalidHeadcount},
		{"negative unit price", func(r *domain.CreateRequest) { r.UnitPrice = -1 }, domain.ErrInvalidUnitPrice},
		{"bad date", func(r *domain.CreateRequest) { r.ServiceStart = "05/01/2025" }, domain.ErrInvalidServiceDate},
		{"reversed period", func(r *domain.CreateRequest) { r.ServiceEnd = "2025-04-30" }, domain.ErrInvalidServicePeriod},
		{"blank discount label", func(r *domain.CreateRequest) {
			r.Discounts = []domain.DiscountRequest{{Label: "", Amount: 1000}}
		}, domain.ErrInvalidDiscountLabel},
		{"negative discount", func(r *domain.CreateRequest) {
			r.Discounts = []domain.DiscountRequest{{Label: "promo", Amount: -5}}
		}, domain.ErrInvalidDiscountAmount},
		{"bad discount kind", func(r *domain.CreateRequest) {
			r.Discounts = []domain.DiscountRequest{{Label: "promo", Amount: 5, Kind: "bogus"}}
		}, domain.ErrInvalidDiscountKind},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := createRequest()
			tc.mutate(&req)
			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(t, testConfig(), &stubRenderer{})

	_, err := svc.Get(context.Background(), "123456789")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Get(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestComputeAmountsEndToEnd(t *testing.T) {
	svc := newTestService(t, testConfig(), &stubRenderer{})
	ctx := context.Background()

	req := createRequest()
	req.Discounts = []domain.DiscountRequest{
		{Label: "신규 학교 할인", Amount: 100_000, Kind: pricing.DiscountKindFixed},
	}
	q, err := svc.Create(ctx, req)
	require.NoError(t, err)

	result, err := svc.ComputeAmounts(ctx, q.ID.String())
	require.NoError(t, err)

	assert.Equal(t, 91, result.Period.TotalDays)
	assert.Equal(t, 3, result.Period.Months)
	assert.Equal(t, 1, result.Period.LeftoverDays)
	assert.Equal(t, int64(1_485_000), result.Amounts.BaseAmount)
	assert.Equal(t, int64(100_000), result.Amounts.TotalDiscount)
	assert.Equal(t, int64(1_385_000), result.Amounts.Total)
	assert.Equal(t, "금백삼십팔만오천원정", result.TotalPhrase)
}

func TestComputeAmountsCalendarMode(t *testing.T) {
	cfg := testConfig()
	cfg.Billing.PeriodMode = "calendar"
	svc := newTestService(t, cfg, &stubRenderer{})
	ctx := context.Background()

	q, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	result, err := svc.ComputeAmounts(ctx, q.ID.String())
	require.NoError(t, err)

	// May, June, July each count whole.
	assert.Equal(t, 3, result.Period.Months)
	assert.Equal(t, 0, result.Period.LeftoverDays)
	assert.Equal(t, int64(1_485_000), result.Amounts.Total)
}

func TestIssueConsumesSequence(t *testing.T) {
	renderer := &stubRenderer{}
	svc := newTestService(t, testConfig(), renderer)
	ctx := context.Background()

	q, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	first, err := svc.Issue(ctx, q.ID.String())
	require.NoError(t, err)
	second, err := svc.Issue(ctx, q.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "2025-001", first.DocumentNumber)
	assert.Equal(t, "2025-002", second.DocumentNumber)
	assert.Equal(t, []byte("%PDF-stub"), first.PDF)
	assert.Equal(t, 2, renderer.calls)

	stored, err := svc.Get(ctx, q.ID.String())
	require.NoError(t, err)
	require.NotNil(t, stored.LastDocumentNumber)
	assert.Equal(t, "2025-002", *stored.LastDocumentNumber)
}

func TestIssueRenderFailureStillConsumesNumber(t *testing.T) {
	renderer := &stubRenderer{fail: true}
	svc := newTestService(t, testConfig(), renderer)
	ctx := context.Background()

	q, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	_, err = svc.Issue(ctx, q.ID.String())
	require.Error(t, err)

	renderer.fail = false
	result, err := svc.Issue(ctx, q.ID.String())
	require.NoError(t, err)

	// 001 was burned by the failed render.
	assert.Equal(t, "2025-002", result.DocumentNumber)
}

func TestListPagination(t *testing.T) {
	svc := newTestService(t, testConfig(), &stubRenderer{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		req := createRequest()
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, domain.ListOptions{PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page.Quotations, 2)
	require.NotEmpty(t, page.PageInfo.NextPageToken)

	next, err := svc.List(ctx, domain.ListOptions{PageSize: 2, PageToken: page.PageInfo.NextPageToken})
	require.NoError(t, err)
	assert.Len(t, next.Quotations, 1)
	assert.Empty(t, next.PageInfo.NextPageToken)
}
