package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"proxima-dashboard/internal/config"
	"proxima-dashboard/internal/storage"
)

var testDB *sql.DB

func TestMain(m *testing.M) {
	// integration tests need a disposable database, e.g.
	// TEST_MYSQL_DSN="root:@tcp(localhost:3306)/proxima_test?parseTime=true&clientFoundRows=true"
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn != "" {
		var err error
		testDB, err = sql.Open("mysql", dsn)
		if err != nil {
			panic(fmt.Errorf("open test db: %w", err))
		}

		if err := testDB.Ping(); err != nil {
			panic(fmt.Errorf("ping failed: %w", err))
		}

		if err := NewWithDB(testDB).Migrate(context.Background()); err != nil {
			panic(err)
		}
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func requireDB(t *testing.T) *Storage {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_MYSQL_DSN not set")
	}
	cleanupTestDB(t)
	return NewWithDB(testDB)
}

func cleanupTestDB(t *testing.T) {
	tables := []string{"work_orders", "work_logs", "purchase_invoices", "workers", "availabilities", "recurring_absences", "global_days"}
	for _, table := range tables {
		_, err := testDB.Exec("DELETE FROM " + table)
		require.NoError(t, err)
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.Config{
		DBUser: "proxima", DBPassword: "pw", DBHost: "db", DBPort: 3307, DBName: "werkplaats", ParseTime: true,
	})

	assert.Contains(t, dsn, "proxima:pw@tcp(db:3307)/werkplaats")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
}

func TestDecodeBudget(t *testing.T) {
	b, err := decodeBudget([]byte(`{"kbw": 12.5, "plw": "4", "montage": null}`))
	require.NoError(t, err)

	assert.Equal(t, json.Number("12.5"), b["kbw"])
	assert.Equal(t, "4", b["plw"])
	assert.Nil(t, b["montage"])

	for _, raw := range [][]byte{nil, []byte("null")} {
		b, err := decodeBudget(raw)
		require.NoError(t, err)
		assert.Nil(t, b)
	}

	_, err = decodeBudget([]byte(`{`))
	assert.Error(t, err)
}

func TestEncodeBudget(t *testing.T) {
	raw, err := encodeBudget(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = encodeBudget(storage.HourBudget{"kbw": 12.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kbw": 12.5}`, raw.(string))
}

func TestNullFloat(t *testing.T) {
	assert.False(t, nullFloat(nil).Valid)

	v := 0.0
	assert.Equal(t, sql.NullFloat64{Float64: 0, Valid: true}, nullFloat(&v))
}

func TestNormalizeDate(t *testing.T) {
	assert.Equal(t, "2024-03-05", normalizeDate("2024-03-05"))
	assert.Equal(t, "2024-03-05", normalizeDate("2024-03-05T00:00:00Z"))
	assert.Equal(t, "2024-03-05", normalizeDate("2024-03-05 00:00:00"))
	assert.Equal(t, "", normalizeDate(""))
}

func TestStorage_WorkLogLifecycle(t *testing.T) {
	s := requireDB(t)
	ctx := context.Background()

	_, err := testDB.Exec(`
		INSERT INTO work_orders (id, order_number, client, order_value, hour_budget, status, created_at)
		VALUES ('o1', '24-001', 'Bakker BV', 1500.00, '{"kbw": 10, "montage": "4"}', 'In uitvoering', 1)
	`)
	require.NoError(t, err)

	orders, err := s.GetAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].OrderValue)
	assert.Equal(t, 1500.0, *orders[0].OrderValue)
	assert.Equal(t, json.Number("10"), orders[0].HourBudget[storage.BudgetKBW])

	err = s.SaveWorkLog(ctx, storage.WorkLog{
		ID: "l1", OrderID: "o1", Worker: "Piet", Date: "2024-03-05", Hours: 7.5,
		Category: "MONTAGE", Activity: "Reistijd", Note: "heen", Timestamp: 1000,
	})
	require.NoError(t, err)

	logs, err := s.GetAllWorkLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "2024-03-05", logs[0].Date)
	assert.Equal(t, 7.5, logs[0].Hours)
	assert.Equal(t, "Reistijd", logs[0].Activity)

	require.NoError(t, s.UpdateWorkLog(ctx, "o1", "l1", 6, "heen en terug"))
	require.NoError(t, s.UpdateWorkLog(ctx, "o1", "l1", 6, "heen en terug"))

	logs, err = s.GetAllWorkLogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6.0, logs[0].Hours)
	assert.Equal(t, "heen en terug", logs[0].Note)

	require.NoError(t, s.DeleteWorkLog(ctx, "o1", "l1"))
	assert.ErrorIs(t, s.DeleteWorkLog(ctx, "o1", "l1"), storage.ErrLogNotFound)
	assert.ErrorIs(t, s.UpdateWorkLog(ctx, "o1", "l1", 1, ""), storage.ErrLogNotFound)
}

func TestStorage_InvoicesAndRates(t *testing.T) {
	s := requireDB(t)
	ctx := context.Background()

	require.NoError(t, s.SaveInvoice(ctx, storage.PurchaseInvoice{
		ID: "i1", OrderID: "o1", Supplier: "Staalhandel", Amount: 99.95, Date: "2024-03-01", Category: "MATERIALI", Timestamp: 1,
	}))

	invoices, err := s.GetAllInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, 99.95, invoices[0].Amount)

	require.NoError(t, s.DeleteInvoice(ctx, "i1"))

	require.NoError(t, s.UpdateWorkerRates(ctx, []storage.WorkerRate{{Worker: "Piet", HourlyRate: 45}}))
	_, err = testDB.Exec(`INSERT INTO workers (name, hourly_rate) VALUES ('Klaas', NULL)`)
	require.NoError(t, err)

	rates, err := s.GetWorkerRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, storage.RateTable{"Piet": 45}, rates)

	workers, err := s.GetAllWorkers(ctx)
	require.NoError(t, err)
	assert.Len(t, workers, 2)
}

func TestStorage_OrderLifecycle(t *testing.T) {
	s := requireDB(t)
	ctx := context.Background()

	value := 20000.0
	order := storage.WorkOrder{
		ID: "o1", OrderNumber: "24-010", Client: "Gemeente", OrderValue: &value,
		HourBudget: storage.HourBudget{"kbw": 10, "montage": 6}, Status: storage.StatusPending, CreatedAt: 5,
	}
	require.NoError(t, s.SaveOrder(ctx, order))

	got, err := s.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "24-010", got.OrderNumber)
	assert.Equal(t, json.Number("10"), got.HourBudget["kbw"])

	order.Client = "Gemeente Zwolle"
	order.OrderValue = nil
	order.HourBudget = nil
	require.NoError(t, s.UpdateOrder(ctx, order))

	got, err = s.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "Gemeente Zwolle", got.Client)
	assert.Nil(t, got.OrderValue)
	assert.Nil(t, got.HourBudget)

	require.NoError(t, s.SaveWorkLog(ctx, storage.WorkLog{ID: "l1", OrderID: "o1", Worker: "Piet", Date: "2024-03-05", Hours: 2, Timestamp: 1}))
	require.NoError(t, s.SaveInvoice(ctx, storage.PurchaseInvoice{ID: "i1", OrderID: "o1", Supplier: "X", Amount: 1, Date: "2024-03-05", Category: "ALTRO", Timestamp: 1}))

	require.NoError(t, s.DeleteOrder(ctx, "o1"))

	logs, err := s.GetAllWorkLogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs)

	invoices, err := s.GetAllInvoices(ctx)
	require.NoError(t, err)
	assert.Empty(t, invoices)

	assert.ErrorIs(t, s.DeleteOrder(ctx, "o1"), storage.ErrOrderNotFound)
	assert.ErrorIs(t, s.UpdateOrder(ctx, order), storage.ErrOrderNotFound)
	_, err = s.GetOrder(ctx, "o1")
	assert.ErrorIs(t, err, storage.ErrOrderNotFound)
}

func TestStorage_WorkerLifecycle(t *testing.T) {
	s := requireDB(t)
	ctx := context.Background()

	rate := 38.0
	require.NoError(t, s.CreateWorker(ctx, storage.SaveWorker{Name: "Jan", HourlyRate: &rate}))
	assert.ErrorIs(t, s.CreateWorker(ctx, storage.SaveWorker{Name: "Jan"}), storage.ErrWorkerExists)

	require.NoError(t, s.SaveAvailabilities(ctx, []storage.Availability{{ID: "a1", Worker: "Jan", Date: "2024-03-05", Type: "SICK"}}))
	require.NoError(t, s.SaveRecurringAbsence(ctx, storage.RecurringAbsence{
		ID: "r1", Worker: "Jan", Type: "ABSENT", TimeOfDay: "ALL_DAY", DayOfWeek: 5, StartDate: "2024-03-01", NumberOfWeeks: 4,
	}))

	require.NoError(t, s.DeleteWorker(ctx, "Jan"))
	assert.ErrorIs(t, s.DeleteWorker(ctx, "Jan"), storage.ErrWorkerNotFound)

	availabilities, err := s.GetAllAvailabilities(ctx)
	require.NoError(t, err)
	assert.Empty(t, availabilities)

	absences, err := s.GetRecurringAbsences(ctx)
	require.NoError(t, err)
	assert.Empty(t, absences)
}

func TestStorage_ScheduleLifecycle(t *testing.T) {
	s := requireDB(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAvailabilities(ctx, []storage.Availability{
		{ID: "a1", Worker: "Piet", Date: "2024-03-05", Type: "VACATION"},
		{ID: "a2", Worker: "Klaas", Date: "2024-03-06", Type: "SICK_MORNING"},
	}))
	require.NoError(t, s.SaveAvailabilities(ctx, []storage.Availability{{ID: "a1", Worker: "Piet", Date: "2024-03-05", Type: "ABSENT"}}))

	availabilities, err := s.GetAllAvailabilities(ctx)
	require.NoError(t, err)
	require.Len(t, availabilities, 2)
	assert.Equal(t, "ABSENT", availabilities[0].Type)
	assert.Equal(t, "2024-03-05", availabilities[0].Date)

	require.NoError(t, s.DeleteAvailability(ctx, "a2"))
	assert.ErrorIs(t, s.DeleteAvailability(ctx, "a2"), storage.ErrAvailabilityNotFound)

	absence := storage.RecurringAbsence{
		ID: "r1", Worker: "Piet", Type: "SICK", TimeOfDay: "MORNING", DayOfWeek: 1, StartDate: "2024-03-04", NumberOfWeeks: 3, Note: "fysio",
	}
	require.NoError(t, s.SaveRecurringAbsence(ctx, absence))

	absences, err := s.GetRecurringAbsences(ctx)
	require.NoError(t, err)
	assert.Equal(t, []storage.RecurringAbsence{absence}, absences)

	require.NoError(t, s.DeleteRecurringAbsence(ctx, "r1"))
	assert.ErrorIs(t, s.DeleteRecurringAbsence(ctx, "r1"), storage.ErrAbsenceNotFound)

	require.NoError(t, s.SaveGlobalDay(ctx, storage.GlobalDay{Date: "2024-12-25", Type: "ADV"}))
	require.NoError(t, s.SaveGlobalDay(ctx, storage.GlobalDay{Date: "2024-12-25", Type: "HOLIDAY"}))

	days, err := s.GetGlobalDays(ctx)
	require.NoError(t, err)
	assert.Equal(t, []storage.GlobalDay{{Date: "2024-12-25", Type: "HOLIDAY"}}, days)

	require.NoError(t, s.DeleteGlobalDay(ctx, "2024-12-25"))
	assert.ErrorIs(t, s.DeleteGlobalDay(ctx, "2024-12-25"), storage.ErrGlobalDayNotFound)
}
