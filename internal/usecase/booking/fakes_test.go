package booking_test

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/domain"
	bookingdomain "github.com/BruksfildServices01/service-marketplace/internal/domain/booking"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
)

// fakeRepo keeps rows in memory and hands out copies, so a use case that
// mutates a booking without saving it leaves the stored row untouched.
type fakeRepo struct {
	mu       sync.Mutex
	services map[uint]models.Service
	users    map[uint]models.User
	bookings map[uint]models.Booking
	nextID   uint
	saves    int

	beforeWrite func()
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: map[uint]models.Service{},
		users:    map[uint]models.User{},
		bookings: map[uint]models.Booking{},
		nextID:   100,
	}
}

func (r *fakeRepo) addUser(u models.User) {
	r.users[u.ID] = u
}

func (r *fakeRepo) addService(s models.Service) {
	r.services[s.ID] = s
}

func (r *fakeRepo) addBooking(b models.Booking) {
	r.bookings[b.ID] = b
}

func (r *fakeRepo) stored(id uint) models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings[id]
}

func (r *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	b.Customer = r.users[b.CustomerID]
	if b.ProviderID != nil {
		p := r.users[*b.ProviderID]
		b.Provider = &p
	}
	return &b, nil
}

// write applies fn to the stored row if match accepts it. beforeWrite runs
// first so tests can slip a concurrent change in after the use case read.
func (r *fakeRepo) write(id uint, match func(models.Booking) bool, fn func(*models.Booking)) error {
	if r.beforeWrite != nil {
		hook := r.beforeWrite
		r.beforeWrite = nil
		hook()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !match(b) {
		return domain.ErrConflict
	}

	r.saves++
	fn(&b)
	b.UpdatedAt = time.Now()
	r.bookings[id] = b
	return nil
}

func (r *fakeRepo) ChangeStatus(_ context.Context, next *models.Booking, from bookingdomain.Status) error {
	return r.write(next.ID,
		func(b models.Booking) bool { return b.Status == string(from) },
		func(b *models.Booking) {
			b.Status = next.Status
			b.CancelledAt = next.CancelledAt
			b.CancelledBy = next.CancelledBy
			b.CancellationReason = next.CancellationReason
			b.CompletedAt = next.CompletedAt
		},
	)
}

func (r *fakeRepo) SetRating(_ context.Context, id uint, rating int, review string, when []bookingdomain.Status) error {
	return r.write(id,
		func(b models.Booking) bool { return slices.Contains(when, bookingdomain.Status(b.Status)) },
		func(b *models.Booking) {
			b.Rating = &rating
			b.Review = review
		},
	)
}

func (r *fakeRepo) SetPaymentStatus(_ context.Context, id uint, from, to bookingdomain.PaymentStatus) error {
	return r.write(id,
		func(b models.Booking) bool { return b.PaymentStatus == string(from) },
		func(b *models.Booking) { b.PaymentStatus = string(to) },
	)
}

// cancel simulates the customer cancelling through another request.
func (r *fakeRepo) cancel(id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.bookings[id]
	b.Status = string(bookingdomain.StatusCancelled)
	r.bookings[id] = b
}

func (r *fakeRepo) DeleteBooking(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepo) ListBookings(_ context.Context, f bookingdomain.ListFilter) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if f.CustomerID != nil && b.CustomerID != *f.CustomerID {
			continue
		}
		if f.ProviderID != nil && (b.ProviderID == nil || *b.ProviderID != *f.ProviderID) {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeRepo) ListPendingForProvider(context.Context, uint, time.Time, int) ([]models.Booking, error) {
	return nil, nil
}

func (r *fakeRepo) ListUpdatedForCustomer(context.Context, uint, time.Time, []string, int) ([]models.Booking, error) {
	return nil, nil
}

// -------- side channels --------

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

type publisher struct {
	mu   sync.Mutex
	keys []string
}

func (p *publisher) Publish(_ context.Context, key string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	return nil
}

func (p *publisher) Close() error { return nil }

func (p *publisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}
