package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/Ebennett1/Ecommerce-Platform-Back-end/internal/model"

	"github.com/shopspring/decimal"
)

// In-memory stand-ins for the pgx repositories. The cart fake mirrors
// the ON CONFLICT increment the real store does in SQL.

type fakeProductStore struct {
	products map[int64]*model.Product
}

func newFakeProductStore(products ...*model.Product) *fakeProductStore {
	s := &fakeProductStore{products: map[int64]*model.Product{}}
	for _, p := range products {
		s.products[p.ProductID] = p
	}
	return s
}

func (s *fakeProductStore) Create(ctx context.Context, p *model.Product) (int64, error) {
	id := int64(len(s.products) + 1)
	p.ProductID = id
	s.products[id] = p
	return id, nil
}

func (s *fakeProductStore) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, errors.New("product not found")
	}
	return p, nil
}

// List mirrors the SQL filter: optional category match plus
// case-insensitive substring name search, paginated.
func (s *fakeProductStore) List(ctx context.Context, f model.ProductFilter) (*model.ProductPage, error) {
	ids := make([]int64, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	matches := []model.Product{}
	for _, id := range ids {
		p := s.products[id]
		if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
			continue
		}
		matches = append(matches, *p)
	}

	page := &model.ProductPage{Count: int64(len(matches)), Results: []model.Product{}}
	for i := f.Offset(); i < len(matches) && i < f.Offset()+f.PageSize; i++ {
		page.Results = append(page.Results, matches[i])
	}
	return page, nil
}

func (s *fakeProductStore) Update(ctx context.Context, p *model.Product) error {
	if _, ok := s.products[p.ProductID]; !ok {
		return errors.New("product not found")
	}
	s.products[p.ProductID] = p
	return nil
}

func (s *fakeProductStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.products[id]; !ok {
		return errors.New("product not found")
	}
	delete(s.products, id)
	return nil
}

type fakeCartStore struct {
	products *fakeProductStore
	carts    map[int64]*model.Cart // by user
	items    map[int64]*model.CartItem
	nextCart int64
	nextItem int64
}

func newFakeCartStore(products *fakeProductStore) *fakeCartStore {
	return &fakeCartStore{
		products: products,
		carts:    map[int64]*model.Cart{},
		items:    map[int64]*model.CartItem{},
	}
}

func (s *fakeCartStore) GetOrCreate(ctx context.Context, userID int64) (*model.Cart, error) {
	if c, ok := s.carts[userID]; ok {
		return c, nil
	}
	s.nextCart++
	c := &model.Cart{CartID: s.nextCart, UserID: userID}
	s.carts[userID] = c
	return c, nil
}

func (s *fakeCartStore) GetItems(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	items := []model.CartItem{}
	for id := int64(1); id <= s.nextItem; id++ {
		it, ok := s.items[id]
		if !ok || it.CartID != cartID {
			continue
		}
		out := *it
		out.Subtotal = out.Price.Mul(decimal.NewFromInt(int64(out.Quantity)))
		items = append(items, out)
	}
	return items, nil
}

func (s *fakeCartStore) AddOrIncrementItem(ctx context.Context, cartID, productID int64, qty int) (int64, error) {
	for id, it := range s.items {
		if it.CartID == cartID && it.ProductID == productID {
			it.Quantity += qty
			return id, nil
		}
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return 0, err
	}
	s.nextItem++
	s.items[s.nextItem] = &model.CartItem{
		CartItemID: s.nextItem,
		CartID:     cartID,
		ProductID:  productID,
		Name:       p.Name,
		Price:      p.Price,
		Quantity:   qty,
	}
	return s.nextItem, nil
}

func (s *fakeCartStore) GetItem(ctx context.Context, itemID int64) (*model.CartItem, error) {
	it, ok := s.items[itemID]
	if !ok {
		return nil, errors.New("cart item not found")
	}
	out := *it
	out.Subtotal = out.Price.Mul(decimal.NewFromInt(int64(out.Quantity)))
	return &out, nil
}

func (s *fakeCartStore) SetItemQuantity(ctx context.Context, itemID int64, qty int) error {
	it, ok := s.items[itemID]
	if !ok {
		return errors.New("cart item not found")
	}
	it.Quantity = qty
	return nil
}

func (s *fakeCartStore) DeleteItem(ctx context.Context, itemID int64) error {
	if _, ok := s.items[itemID]; !ok {
		return errors.New("cart item not found")
	}
	delete(s.items, itemID)
	return nil
}

func (s *fakeCartStore) ReplaceItems(ctx context.Context, cartID int64, lines []model.CartLine) error {
	for id, it := range s.items {
		if it.CartID == cartID {
			delete(s.items, id)
		}
	}
	for _, l := range lines {
		if _, err := s.AddOrIncrementItem(ctx, cartID, l.ProductID, l.Quantity); err != nil {
			return err
		}
	}
	return nil
}

type fakeOrderStore struct {
	cart   *fakeCartStore
	orders map[int64]*model.Order
	nextID int64
}

func newFakeOrderStore(cart *fakeCartStore) *fakeOrderStore {
	return &fakeOrderStore{cart: cart, orders: map[int64]*model.Order{}}
}

func (s *fakeOrderStore) CreateFromCart(ctx context.Context, userID, cartID int64) (*model.Order, error) {
	items, err := s.cart.GetItems(ctx, cartID)
	if err != nil {
		return nil, err
	}
	s.nextID++
	o := &model.Order{
		OrderID: s.nextID,
		UserID:  userID,
		Status:  model.OrderStatusProcessing,
		Items:   []model.OrderItem{},
	}
	for _, it := range items {
		o.Items = append(o.Items, model.OrderItem{
			OrderID:   o.OrderID,
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
		if err := s.cart.DeleteItem(ctx, it.CartItemID); err != nil {
			return nil, err
		}
	}
	o.TotalPrice = model.OrderTotal(o.Items)
	s.orders[o.OrderID] = o
	return o, nil
}

func (s *fakeOrderStore) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	out := []model.Order{}
	for id := s.nextID; id >= 1; id-- {
		if o, ok := s.orders[id]; ok && o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (s *fakeOrderStore) GetByIDForUser(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	o, ok := s.orders[orderID]
	if !ok || o.UserID != userID {
		return nil, errors.New("order not found")
	}
	return o, nil
}

func (s *fakeOrderStore) DeleteByUser(ctx context.Context, userID int64) error {
	for id, o := range s.orders {
		if o.UserID == userID {
			delete(s.orders, id)
		}
	}
	return nil
}

type fakeUserStore struct {
	users    map[int64]*model.User
	profiles map[int64]*model.Profile
	nextID   int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*model.User{}, profiles: map[int64]*model.Profile{}}
}

func (s *fakeUserStore) CreateWithProfile(ctx context.Context, username, email, passwordhash string) (int64, error) {
	s.nextID++
	s.users[s.nextID] = &model.User{UserID: s.nextID, Username: username, Email: email, PasswordHash: passwordhash}
	s.profiles[s.nextID] = &model.Profile{UserID: s.nextID}
	return s.nextID, nil
}

func (s *fakeUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, errors.New("user not found")
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, errors.New("user not found")
}

func (s *fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	out := *u
	return &out, nil
}

func (s *fakeUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, err := s.GetByUsername(ctx, username)
	return err == nil, nil
}

func (s *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	return err == nil, nil
}

func (s *fakeUserStore) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return p, nil
}

func (s *fakeUserStore) UpdateProfile(ctx context.Context, userID int64, phone string) error {
	p, ok := s.profiles[userID]
	if !ok {
		return errors.New("profile not found")
	}
	p.Phone = phone
	return nil
}

func (s *fakeUserStore) SetPassword(ctx context.Context, userID int64, passwordhash string) error {
	u, ok := s.users[userID]
	if !ok {
		return errors.New("user not found")
	}
	u.PasswordHash = passwordhash
	return nil
}

// mustProduct builds a product with the given id, name and price string.
func mustProduct(id int64, name, price string) *model.Product {
	return &model.Product{
		ProductID: id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Stock:     100,
	}
}
