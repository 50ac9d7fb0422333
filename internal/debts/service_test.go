package debts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okeb-ng/backoffice/internal/shared"
)

type fakeRepo struct {
	nextID int64
	debts  map[int64]Debt
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, debts: map[int64]Debt{}}
}

func (f *fakeRepo) Insert(_ context.Context, in CreateInput) (Debt, error) {
	d := Debt{
		ID:           f.nextID,
		CustomerName: in.CustomerName,
		Amount:       in.Amount,
		Status:       StatusUnpaid,
		StaffName:    in.StaffName,
		Notes:        in.Notes,
		Date:         in.Date,
	}
	f.debts[d.ID] = d
	f.nextID++
	return d, nil
}

func (f *fakeRepo) Get(_ context.Context, id int64) (Debt, error) {
	d, ok := f.debts[id]
	if !ok {
		return Debt{}, shared.ErrNotFound
	}
	return d, nil
}

func (f *fakeRepo) ListUnpaid(_ context.Context, tag string) ([]Debt, error) {
	var out []Debt
	for id := f.nextID - 1; id >= 1; id-- {
		d, ok := f.debts[id]
		if !ok || d.Status != StatusUnpaid {
			continue
		}
		if tag != "" && d.Notes != tag {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeRepo) FindOpenByCustomer(ctx context.Context, name, tag string) (Debt, error) {
	open, _ := f.ListUnpaid(ctx, tag)
	for _, d := range open {
		if d.CustomerName == name {
			return d, nil
		}
	}
	return Debt{}, ErrNoOpenDebt
}

func (f *fakeRepo) UpdateAmount(_ context.Context, id int64, amount float64) error {
	d := f.debts[id]
	d.Amount = amount
	f.debts[id] = d
	return nil
}

func (f *fakeRepo) Settle(_ context.Context, id int64, notes string) error {
	d := f.debts[id]
	d.Status = StatusPaid
	d.Amount = 0
	d.Notes = notes
	f.debts[id] = d
	return nil
}

func (f *fakeRepo) MarkPaid(_ context.Context, id int64) error {
	d, ok := f.debts[id]
	if !ok || d.Status != StatusUnpaid {
		return shared.ErrNotFound
	}
	d.Status = StatusPaid
	f.debts[id] = d
	return nil
}

func (f *fakeRepo) SumUnpaid(_ context.Context) (float64, error) {
	var total float64
	for _, d := range f.debts {
		if d.Status == StatusUnpaid {
			total += d.Amount
		}
	}
	return total, nil
}

func TestCreateNormalizesCustomerName(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, nil)

	d, err := svc.Create(context.Background(), CreateInput{
		CustomerName: "  mALLAM   ibrahim ",
		Amount:       5000,
		Notes:        CategoryFarm,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mallam Ibrahim", d.CustomerName)
	assert.Equal(t, StatusUnpaid, d.Status)
	assert.NotEmpty(t, d.Date)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateInput{CustomerName: "A", Amount: 0})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), CreateInput{CustomerName: "   ", Amount: 100})
	assert.Error(t, err)
}

func TestRepayFullBalanceSettlesDebt(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, nil)

	d, err := svc.Create(context.Background(), CreateInput{
		CustomerName: "Mallam Ibrahim",
		Amount:       5000,
		Notes:        CategoryFarm,
	})
	require.NoError(t, err)

	out, err := svc.Repay(context.Background(), "mallam ibrahim", 5000, CategoryFarm)
	require.NoError(t, err)
	assert.True(t, out.Settled)
	assert.Zero(t, out.NewBalance)

	stored := repo.debts[d.ID]
	assert.Equal(t, StatusPaid, stored.Status)
	assert.Zero(t, stored.Amount)
	assert.Equal(t, "Paid via Mallam Ibrahim", stored.Notes)
}

func TestRepayPartialReducesBalance(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, nil)

	d, err := svc.Create(context.Background(), CreateInput{
		CustomerName: "Mallam Ibrahim",
		Amount:       5000,
		Notes:        CategoryFarm,
	})
	require.NoError(t, err)

	out, err := svc.Repay(context.Background(), "Mallam Ibrahim", 2000, CategoryFarm)
	require.NoError(t, err)
	assert.False(t, out.Settled)
	assert.Equal(t, 3000.0, out.NewBalance)

	stored := repo.debts[d.ID]
	assert.Equal(t, StatusUnpaid, stored.Status)
	assert.Equal(t, 3000.0, stored.Amount)
}

func TestRepayOverpaymentSettlesAtZero(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		CustomerName: "Hauwa Bello",
		Amount:       1500,
		Notes:        CategoryFarm,
	})
	require.NoError(t, err)

	out, err := svc.Repay(context.Background(), "Hauwa Bello", 2000, CategoryFarm)
	require.NoError(t, err)
	assert.True(t, out.Settled)
	assert.Zero(t, out.Debt.Amount)
}

func TestRepayPicksNewestDebtOnNameCollision(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, nil)

	older, err := svc.Create(context.Background(), CreateInput{
		CustomerName: "Hauwa Bello",
		Amount:       1000,
		Notes:        CategoryFarm,
	})
	require.NoError(t, err)
	newer, err := svc.Create(context.Background(), CreateInput{
		CustomerName: "Hauwa Bello",
		Amount:       4000,
		Notes:        CategoryFarm,
	})
	require.NoError(t, err)

	out, err := svc.Repay(context.Background(), "hauwa bello", 500, CategoryFarm)
	require.NoError(t, err)
	assert.Equal(t, newer.ID, out.Debt.ID)
	assert.Equal(t, 3500.0, out.NewBalance)
	assert.Equal(t, 1000.0, repo.debts[older.ID].Amount)
}

func TestRepayWithoutOpenDebt(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, nil, nil)

	_, err := svc.Repay(context.Background(), "Nobody Here", 100, CategoryFarm)
	assert.ErrorIs(t, err, ErrNoOpenDebt)
}

func TestRepayScopedByCategory(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		CustomerName: "Hauwa Bello",
		Amount:       1000,
		Notes:        CategoryBakeryShortage,
	})
	require.NoError(t, err)

	_, err = svc.Repay(context.Background(), "Hauwa Bello", 500, CategoryFarm)
	assert.ErrorIs(t, err, ErrNoOpenDebt)
}

func TestMarkPaidKeepsRecordedAmount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, nil, nil)

	created, err := svc.Create(context.Background(), CreateInput{
		CustomerName: "Sani Musa",
		Amount:       12000,
	})
	require.NoError(t, err)

	d, err := svc.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, d.Status)
	assert.Equal(t, 12000.0, d.Amount)

	_, err = svc.MarkPaid(context.Background(), created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
