package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/grigorv/snackshop/internal/database"
	"github.com/grigorv/snackshop/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserStore keeps users in memory with the same contract as UserDAO.
type fakeUserStore struct {
	users  map[string]model.User
	nextID model.ID

	getProfileErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]model.User)}
}

func (f *fakeUserStore) GetByLogin(_ context.Context, login string) (model.User, error) {
	user, ok := f.users[login]
	if !ok {
		return model.User{}, model.NewError("user", model.ErrNotFound)
	}
	return user, nil
}

func (f *fakeUserStore) Insert(_ context.Context, dto database.InsertUserDTO) (model.ID, error) {
	if _, ok := f.users[dto.Login]; ok {
		return 0, model.NewError("user", model.ErrExists)
	}

	f.nextID++
	f.users[dto.Login] = model.User{
		ID:           f.nextID,
		Login:        dto.Login,
		PasswordHash: dto.PasswordHash,
	}
	return f.nextID, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id model.ID, dto database.UpdateProfileDTO) error {
	for login, user := range f.users {
		if user.ID != id {
			continue
		}
		if dto.FirstName != nil {
			user.FirstName = dto.FirstName
		}
		if dto.LastName != nil {
			user.LastName = dto.LastName
		}
		if dto.Email != nil {
			user.Email = dto.Email
		}
		if dto.BirthDate != nil {
			user.BirthDate = dto.BirthDate
		}
		f.users[login] = user
	}
	return nil
}

func (f *fakeUserStore) GetProfile(_ context.Context, id model.ID) (model.Profile, error) {
	if f.getProfileErr != nil {
		return model.Profile{}, f.getProfileErr
	}

	for _, user := range f.users {
		if user.ID == id {
			return model.Profile{
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Email:     user.Email,
				BirthDate: user.BirthDate,
			}, nil
		}
	}
	return model.Profile{}, model.NewError("user", model.ErrNotFound)
}

// fakeOrderStore mirrors the look-up-else-create contract of OrderDAO.
type fakeOrderStore struct {
	open   map[model.ID]model.ID
	placed map[model.ID]time.Time
	nextID model.ID
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		open:   make(map[model.ID]model.ID),
		placed: make(map[model.ID]time.Time),
	}
}

func (f *fakeOrderStore) ResolveOpen(_ context.Context, user model.ID) (model.ID, error) {
	if order, ok := f.open[user]; ok {
		return order, nil
	}

	f.nextID++
	f.open[user] = f.nextID
	return f.nextID, nil
}

func (f *fakeOrderStore) Place(_ context.Context, user, order model.ID, placedAt time.Time) error {
	delete(f.open, user)
	f.placed[order] = placedAt
	return nil
}

// fakeLineStore keeps order lines keyed by (order, product), overwriting
// quantities on repeated upserts.
type fakeLineStore struct {
	lines map[model.ID]map[model.ID]int
}

func newFakeLineStore() *fakeLineStore {
	return &fakeLineStore{lines: make(map[model.ID]map[model.ID]int)}
}

func (f *fakeLineStore) FindByOrder(_ context.Context, order model.ID) ([]model.OrderLine, error) {
	lines := make([]model.OrderLine, 0)
	for product, quantity := range f.lines[order] {
		lines = append(lines, model.OrderLine{Order: order, Product: product, Quantity: quantity})
	}
	return lines, nil
}

func (f *fakeLineStore) Upsert(_ context.Context, order, product model.ID, quantity int) error {
	if f.lines[order] == nil {
		f.lines[order] = make(map[model.ID]int)
	}
	f.lines[order][product] = quantity
	return nil
}

func (f *fakeLineStore) Delete(_ context.Context, order, product model.ID) error {
	delete(f.lines[order], product)
	return nil
}

type fakeProductStore struct {
	products map[model.ID]model.Product
}

func (f *fakeProductStore) FindAll(_ context.Context) ([]model.ProductSummary, error) {
	summaries := make([]model.ProductSummary, 0, len(f.products))
	for _, p := range f.products {
		summaries = append(summaries, model.ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL})
	}
	return summaries, nil
}

func (f *fakeProductStore) Get(_ context.Context, id model.ID) (model.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return model.Product{}, model.NewError("product", model.ErrNotFound)
	}
	return p, nil
}
