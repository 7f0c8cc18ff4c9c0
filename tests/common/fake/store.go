//go:build unit

package fake

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

var errNoRecord = errors.New("no record")

// Store is an in-memory implementation of every persistence port. It mirrors
// the observable behavior of the Postgres stores: RepositoryError kinds,
// the conditional status update, sort order and pagination.
type Store struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*user.User
	items    map[uuid.UUID]*item.Item
	bookings map[uuid.UUID]*booking.Booking
	comments []*comment.Comment
}

func NewStore() *Store {
	return &Store{
		users:    make(map[uuid.UUID]*user.User),
		items:    make(map[uuid.UUID]*item.Item),
		bookings: make(map[uuid.UUID]*booking.Booking),
	}
}

// Seed helpers

func (s *Store) AddUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
}

func (s *Store) AddItem(i *item.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[i.ID()] = i
}

func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = b
}

// commands.UserRepository

func (s *Store) Create(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email().Value() == u.Email().Value() {
			return infra.WrapRepoErr("email taken", errNoRecord, infra.KindDuplicateKey)
		}
	}
	s.users[u.ID()] = u
	return nil
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errNoRecord, infra.KindNotFound)
	}
	return u, nil
}

func (s *Store) Update(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID()]; !ok {
		return infra.WrapRepoErr("user not found", errNoRecord, infra.KindNotFound)
	}
	for id, existing := range s.users {
		if id != u.ID() && existing.Email().Value() == u.Email().Value() {
			return infra.WrapRepoErr("email taken", errNoRecord, infra.KindDuplicateKey)
		}
	}
	s.users[u.ID()] = u
	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return infra.WrapRepoErr("user not found", errNoRecord, infra.KindNotFound)
	}
	delete(s.users, id)
	return nil
}

// queries.UserExistenceStore

func (s *Store) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.users[id]
	return ok, nil
}

// queries.UserViewStore

func (s *Store) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errNoRecord, infra.KindNotFound)
	}
	return &queries.UserView{ID: u.ID(), Name: u.Name(), Email: u.Email().Value()}, nil
}

func (s *Store) FindAllViews(ctx context.Context) ([]*queries.UserView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]*queries.UserView, 0, len(s.users))
	for _, u := range s.users {
		views = append(views, &queries.UserView{ID: u.ID(), Name: u.Name(), Email: u.Email().Value()})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views, nil
}

// ItemStore is the item-facing half of the fake; it shares the Store state
// but keeps method sets disjoint where signatures would collide.
type ItemStore struct {
	*Store
}

func (s *Store) Items() *ItemStore {
	return &ItemStore{Store: s}
}

// commands.ItemRepository

func (s *ItemStore) Create(ctx context.Context, i *item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[i.ID()] = i
	return nil
}

func (s *ItemStore) FindByID(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("item not found", errNoRecord, infra.KindNotFound)
	}
	return i, nil
}

func (s *ItemStore) Update(ctx context.Context, i *item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[i.ID()]; !ok {
		return infra.WrapRepoErr("item not found", errNoRecord, infra.KindNotFound)
	}
	s.items[i.ID()] = i
	return nil
}

// queries.ItemViewStore

func (s *ItemStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("item not found", errNoRecord, infra.KindNotFound)
	}
	return itemView(i), nil
}

func (s *ItemStore) FindViewsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]*queries.ItemView, 0)
	for _, i := range s.items {
		if i.OwnerID() == ownerID {
			views = append(views, itemView(i))
		}
	}
	sort.Slice(views, func(a, b int) bool { return views[a].Name < views[b].Name })
	return views, nil
}

func (s *ItemStore) SearchAvailable(ctx context.Context, text string) ([]*queries.ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	needle := strings.ToLower(text)
	views := make([]*queries.ItemView, 0)
	for _, i := range s.items {
		if !i.Available() {
			continue
		}
		if strings.Contains(strings.ToLower(i.Name()), needle) ||
			strings.Contains(strings.ToLower(i.Description()), needle) {
			views = append(views, itemView(i))
		}
	}
	sort.Slice(views, func(a, b int) bool { return views[a].Name < views[b].Name })
	return views, nil
}

func itemView(i *item.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          i.ID(),
		Name:        i.Name(),
		Description: i.Description(),
		Available:   i.Available(),
		OwnerID:     i.OwnerID(),
	}
}

// BookingStore is the booking-facing half of the fake.
type BookingStore struct {
	*Store
}

func (s *Store) Bookings() *BookingStore {
	return &BookingStore{Store: s}
}

// commands.BookingRepository

func (s *BookingStore) Create(ctx context.Context, b *booking.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = b
	return nil
}

func (s *BookingStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errNoRecord, infra.KindNotFound)
	}
	// Detached copy, like a row read; callers mutate their copy and persist
	// through UpdateStatusIfWaiting.
	return booking.ReconstructBooking(
		b.ID(), b.ItemID(), b.ItemOwnerID(), b.BookerID(),
		b.Window().Start(), b.Window().End(), b.Status(), b.CreatedAt(),
	), nil
}

func (s *BookingStore) UpdateStatusIfWaiting(ctx context.Context, id uuid.UUID, status booking.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", errNoRecord, infra.KindNotFound)
	}
	if b.Status() != booking.StatusWaiting {
		return errs.ErrAlreadyDecided
	}
	s.bookings[id] = booking.ReconstructBooking(
		b.ID(), b.ItemID(), b.ItemOwnerID(), b.BookerID(),
		b.Window().Start(), b.Window().End(), status, b.CreatedAt(),
	)
	return nil
}

func (s *BookingStore) FindLatestEndedApproved(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var latest *booking.Booking
	for _, b := range s.bookings {
		if b.ItemID() != itemID || b.BookerID() != bookerID || b.Status() != booking.StatusApproved {
			continue
		}
		if !b.Window().EndedBefore(now) {
			continue
		}
		if latest == nil || b.Window().End().After(latest.Window().End()) {
			latest = b
		}
	}
	if latest == nil {
		return nil, infra.WrapRepoErr("no ended approved booking", errNoRecord, infra.KindNotFound)
	}
	return latest, nil
}

// queries.BookingViewStore

func (s *BookingStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errNoRecord, infra.KindNotFound)
	}
	return s.bookingView(b), nil
}

func (s *BookingStore) FindFiltered(ctx context.Context, f booking.ListFilter) ([]*queries.BookingView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]*booking.Booking, 0)
	for _, b := range s.bookings {
		var sameUser bool
		if f.Role == booking.RoleOwner {
			sameUser = b.ItemOwnerID() == f.UserID
		} else {
			sameUser = b.BookerID() == f.UserID
		}
		if sameUser && f.Bucket.Matches(b, f.Now) {
			matched = append(matched, b)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Window().Start().After(matched[j].Window().Start())
	})

	if f.Offset >= len(matched) {
		return []*queries.BookingView{}, nil
	}
	matched = matched[f.Offset:]
	if f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}

	views := make([]*queries.BookingView, len(matched))
	for i, b := range matched {
		views[i] = s.bookingView(b)
	}
	return views, nil
}

// queries.BookingSummaryStore

func (s *BookingStore) FindLastForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingSummaryView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var last *booking.Booking
	for _, b := range s.bookings {
		if b.ItemID() != itemID || b.Status() != booking.StatusApproved || b.Window().Start().After(now) {
			continue
		}
		if last == nil || b.Window().End().After(last.Window().End()) {
			last = b
		}
	}
	return summaryView(last), nil
}

func (s *BookingStore) FindNextForItem(ctx context.Context, itemID uuid.UUID, now time.Time) (*queries.BookingSummaryView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var next *booking.Booking
	for _, b := range s.bookings {
		if b.ItemID() != itemID || b.Status() != booking.StatusApproved || !b.Window().Start().After(now) {
			continue
		}
		if next == nil || b.Window().Start().Before(next.Window().Start()) {
			next = b
		}
	}
	return summaryView(next), nil
}

func summaryView(b *booking.Booking) *queries.BookingSummaryView {
	if b == nil {
		return nil
	}
	return &queries.BookingSummaryView{
		ID:       b.ID(),
		BookerID: b.BookerID(),
		Start:    b.Window().Start(),
		End:      b.Window().End(),
	}
}

func (s *Store) bookingView(b *booking.Booking) *queries.BookingView {
	view := &queries.BookingView{
		ID:          b.ID(),
		Start:       b.Window().Start(),
		End:         b.Window().End(),
		Status:      b.Status().String(),
		CreatedAt:   b.CreatedAt(),
		ItemOwnerID: b.ItemOwnerID(),
		Booker:      queries.UserRef{ID: b.BookerID()},
		Item:        queries.ItemRef{ID: b.ItemID()},
	}
	if u, ok := s.users[b.BookerID()]; ok {
		view.Booker.Name = u.Name()
	}
	if i, ok := s.items[b.ItemID()]; ok {
		view.Item.Name = i.Name()
	}
	return view
}

// CommentStore is the comment-facing half of the fake.
type CommentStore struct {
	*Store
}

func (s *Store) Comments() *CommentStore {
	return &CommentStore{Store: s}
}

// commands.CommentRepository

func (s *CommentStore) Create(ctx context.Context, c *comment.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append(s.comments, c)
	return nil
}

// queries.CommentViewStore

func (s *CommentStore) FindViewsByItem(ctx context.Context, itemID uuid.UUID) ([]queries.CommentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	views := make([]queries.CommentView, 0)
	for _, c := range s.comments {
		if c.ItemID() != itemID {
			continue
		}
		view := queries.CommentView{ID: c.ID(), Text: c.Text(), CreatedAt: c.CreatedAt()}
		if u, ok := s.users[c.AuthorID()]; ok {
			view.AuthorName = u.Name()
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool { return views[i].CreatedAt.After(views[j].CreatedAt) })
	return views, nil
}
