package cart

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/amirulhakim/spicebite-backend/pkg/db/models"
)

// Line is one (food item, quantity) pairing inside the cart. Name and
// Price mirror the catalog row the line was created from; the submission
// transaction re-reads the catalog for its own snapshots.
type Line struct {
	FoodItemID int64           `json:"food_item_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// Session owns one customer's cart and checkout form. Sessions are never
// shared across customers; the mutex only serializes racing HTTP requests
// carrying the same session id.
type Session struct {
	id string

	mu         sync.Mutex
	lines      map[int64]*Line
	form       CheckoutForm
	submitting bool
}

func newSession(id string) *Session {
	return &Session{
		id:    id,
		lines: make(map[int64]*Line),
		form:  NewCheckoutForm(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// AddItem inserts a quantity-1 line for the item, or bumps the existing
// line by one. Repeated calls for the same item never create a second line.
func (s *Session) AddItem(item models.FoodItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if line, ok := s.lines[item.ID]; ok {
		line.Quantity++
		return
	}
	s.lines[item.ID] = &Line{
		FoodItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   1,
	}
}

// SetQuantity pins the line for foodItemID to exactly quantity. Zero or
// negative removes the line entirely; negative quantities are never stored.
func (s *Session) SetQuantity(foodItemID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		delete(s.lines, foodItemID)
		return
	}
	if line, ok := s.lines[foodItemID]; ok {
		line.Quantity = quantity
	}
}

// Lines returns a copy of the current lines ordered by food item id.
func (s *Session) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.linesLocked()
}

func (s *Session) linesLocked() []Line {
	out := make([]Line, 0, len(s.lines))
	for _, line := range s.lines {
		out = append(out, *line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FoodItemID < out[j].FoodItemID })
	return out
}

// Total recomputes the cart total from scratch on every call.
func (s *Session) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *Session) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (s *Session) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Clear removes every line. Only the submission transaction calls this,
// after the order is confirmed.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make(map[int64]*Line)
}

// Form returns a copy of the checkout form.
func (s *Session) Form() CheckoutForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// SetForm replaces the checkout form. Writes are validation-free; the form
// is only checked by Validate at submission time.
func (s *Session) SetForm(form CheckoutForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = form
}

// BeginSubmit flips the session into the Submitting state. It reports false
// when a submission is already in flight; concurrent triggers are dropped,
// not queued.
func (s *Session) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// EndSubmit returns the session to Idle.
func (s *Session) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

// FinishSuccess clears the cart and resets the form after a confirmed order.
func (s *Session) FinishSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make(map[int64]*Line)
	s.form = NewCheckoutForm()
}
