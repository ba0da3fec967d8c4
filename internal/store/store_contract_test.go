package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/stretchr/testify/suite"
)

// ProductStoreContract holds the behaviour every ProductStore implementation must show.
// Embedding suites assign store before each test and start from an empty store.
type ProductStoreContract struct {
	suite.Suite
	ctx   context.Context
	store ProductStore
}

func (s *ProductStoreContract) insert(name, description string, price float64, quantity int32) Product {
	s.T().Helper()
	p, err := s.store.Insert(s.ctx, ProductFields{Name: name, Description: description, Price: price, Quantity: quantity})
	s.Require().NoError(err, "insert helper failed")
	return p
}

func (s *ProductStoreContract) TestInsertAndFind() {
	// when
	created := s.insert("Widget", "a widget", 9.99, 10)

	// then
	s.NotZero(created.ID)
	byID, err := s.store.FindByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created, byID)
	byName, err := s.store.FindByName(s.ctx, "Widget")
	s.Require().NoError(err)
	s.Equal(created, byName)
}

func (s *ProductStoreContract) TestInsert_FreshIDs() {
	a := s.insert("A", "", 1, 1)
	b := s.insert("B", "", 1, 1)
	s.NotEqual(a.ID, b.ID)
}

func (s *ProductStoreContract) TestInsert_DuplicateName() {
	// given
	original := s.insert("Widget", "first", 1, 1)

	// when
	_, err := s.store.Insert(s.ctx, ProductFields{Name: "Widget", Description: "second", Price: 2, Quantity: 2})

	// then
	s.ErrorIs(err, perrors.ErrDuplicateName)
	stored, err := s.store.FindByName(s.ctx, "Widget")
	s.Require().NoError(err)
	s.Equal(original, stored)
}

func (s *ProductStoreContract) TestInsert_NameIsCaseSensitive() {
	s.insert("Widget", "", 1, 1)
	_, err := s.store.Insert(s.ctx, ProductFields{Name: "widget", Price: 1, Quantity: 1})
	s.NoError(err)
}

func (s *ProductStoreContract) TestFind_NotFound() {
	_, err := s.store.FindByID(s.ctx, 999)
	s.ErrorIs(err, perrors.ErrProductNotFound)
	_, err = s.store.FindByName(s.ctx, "missing")
	s.ErrorIs(err, perrors.ErrProductNotFound)
}

func (s *ProductStoreContract) TestList_OrderAndBounds() {
	// given
	var ids []int64
	for i := range 5 {
		ids = append(ids, s.insert(fmt.Sprintf("P%d", i), "", float64(i), int32(i)).ID)
	}

	testCases := []struct {
		name     string
		offset   int32
		limit    int32
		expected []int64
	}{
		{name: "first page", offset: 0, limit: 2, expected: ids[0:2]},
		{name: "middle page", offset: 2, limit: 2, expected: ids[2:4]},
		{name: "last partial page", offset: 4, limit: 10, expected: ids[4:]},
		{name: "offset past end", offset: 10, limit: 5, expected: nil},
		{name: "zero limit", offset: 0, limit: 0, expected: nil},
		{name: "everything", offset: 0, limit: 100, expected: ids},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// when
			products, err := s.store.List(s.ctx, tc.offset, tc.limit)

			// then
			s.Require().NoError(err)
			s.LessOrEqual(len(products), int(tc.limit))
			got := make([]int64, 0, len(products))
			for _, p := range products {
				got = append(got, p.ID)
			}
			if tc.expected == nil {
				s.Empty(got)
			} else {
				s.Equal(tc.expected, got)
			}
		})
	}
}

func (s *ProductStoreContract) TestSearch() {
	// given
	lamp := s.insert("Desk Lamp", "warm light", 20, 3)
	bulb := s.insert("Bulb", "spare LIGHT bulb", 2, 30)
	s.insert("Chair", "oak", 50, 4)
	discount := s.insert("Sale 50% off", "", 1, 1)
	s.insert("Sale 50 off", "", 1, 1)

	testCases := []struct {
		name     string
		term     string
		expected []int64
	}{
		{name: "description ignoring case", term: "light", expected: []int64{lamp.ID, bulb.ID}},
		{name: "name ignoring case", term: "dESK", expected: []int64{lamp.ID}},
		{name: "wildcards are literal", term: "50%", expected: []int64{discount.ID}},
		{name: "no match", term: "sofa", expected: nil},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// when
			products, err := s.store.Search(s.ctx, tc.term, 0, 100)

			// then
			s.Require().NoError(err)
			var got []int64
			for _, p := range products {
				got = append(got, p.ID)
			}
			s.Equal(tc.expected, got)
		})
	}
}

func (s *ProductStoreContract) TestReplace() {
	// given
	created := s.insert("Widget", "old", 1, 1)
	changed := Product{ID: created.ID, Name: "Gadget", Description: "new", Price: 2.5, Quantity: 7}

	// when
	updated, err := s.store.Replace(s.ctx, changed)

	// then
	s.Require().NoError(err)
	s.Equal(changed, updated)
	_, err = s.store.FindByName(s.ctx, "Widget")
	s.ErrorIs(err, perrors.ErrProductNotFound)
	byName, err := s.store.FindByName(s.ctx, "Gadget")
	s.Require().NoError(err)
	s.Equal(changed, byName)
}

func (s *ProductStoreContract) TestReplace_KeepsOwnName() {
	created := s.insert("Widget", "old", 1, 1)
	created.Description = "new"
	updated, err := s.store.Replace(s.ctx, created)
	s.Require().NoError(err)
	s.Equal("new", updated.Description)
}

func (s *ProductStoreContract) TestReplace_NotFound() {
	_, err := s.store.Replace(s.ctx, Product{ID: 999, Name: "Ghost"})
	s.ErrorIs(err, perrors.ErrProductNotFound)
}

func (s *ProductStoreContract) TestReplace_DuplicateName() {
	// given
	s.insert("Widget", "", 1, 1)
	gadget := s.insert("Gadget", "", 2, 2)

	// when
	_, err := s.store.Replace(s.ctx, Product{ID: gadget.ID, Name: "Widget", Price: 3, Quantity: 3})

	// then
	s.ErrorIs(err, perrors.ErrDuplicateName)
	stored, err := s.store.FindByID(s.ctx, gadget.ID)
	s.Require().NoError(err)
	s.Equal(gadget, stored)
}

func (s *ProductStoreContract) TestRemove() {
	// given
	created := s.insert("Widget", "", 1, 1)

	// when
	removed, err := s.store.Remove(s.ctx, created.ID)

	// then
	s.Require().NoError(err)
	s.Equal(created, removed)
	_, err = s.store.FindByID(s.ctx, created.ID)
	s.ErrorIs(err, perrors.ErrProductNotFound)
	_, err = s.store.FindByName(s.ctx, "Widget")
	s.ErrorIs(err, perrors.ErrProductNotFound)
	_, err = s.store.Remove(s.ctx, created.ID)
	s.ErrorIs(err, perrors.ErrProductNotFound)

	// name is free again
	again := s.insert("Widget", "", 1, 1)
	s.NotEqual(created.ID, again.ID)
}

func (s *ProductStoreContract) TestDecrementQuantity() {
	// given
	created := s.insert("Widget", "", 1, 5)

	// when
	sold, err := s.store.DecrementQuantity(s.ctx, created.ID, 3)

	// then
	s.Require().NoError(err)
	s.Equal(int32(2), sold.Quantity)

	_, err = s.store.DecrementQuantity(s.ctx, created.ID, 3)
	s.ErrorIs(err, perrors.ErrInsufficientStock)
	stored, err := s.store.FindByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(int32(2), stored.Quantity)

	_, err = s.store.DecrementQuantity(s.ctx, 999, 1)
	s.ErrorIs(err, perrors.ErrProductNotFound)
}

func (s *ProductStoreContract) TestDecrementQuantity_Concurrent() {
	// given
	created := s.insert("Widget", "", 1, 5)
	var succeeded atomic.Int32
	var wg sync.WaitGroup

	// when
	for range 12 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.store.DecrementQuantity(s.ctx, created.ID, 1); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	// then
	s.Equal(int32(5), succeeded.Load())
	stored, err := s.store.FindByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(int32(0), stored.Quantity)
}

func (s *ProductStoreContract) TestInsert_ConcurrentSameName() {
	// given
	var succeeded atomic.Int32
	var wg sync.WaitGroup

	// when
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.store.Insert(s.ctx, ProductFields{Name: "Widget", Price: 1, Quantity: 1}); err == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	// then
	s.Equal(int32(1), succeeded.Load())
}

func (s *ProductStoreContract) TestPing() {
	s.NoError(s.store.Ping(s.ctx))
}
