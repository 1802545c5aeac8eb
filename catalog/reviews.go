// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/bitmark-inc/recordindex/avl"
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/list"
)

// SetReviews - replace the review index with the contents of a list
// and attach each review to its product
// returns the number of reviews indexed, duplicates are skipped
func (s *Store) SetReviews(reviews *list.List[*Review]) int {
	s.reviews = avl.New[*Review]()
	reviews.Each(func(r *Review) bool {
		if !s.reviews.Insert(r.ID, r) {
			s.log.Warnf("review: %d duplicate skipped", r.ID)
			return true
		}
		if p, found := s.products.Search(r.ProductID); found {
			p.Reviews.Insert(r)
		} else {
			s.log.Warnf("review: %d product: %d not found", r.ID, r.ProductID)
		}
		return true
	})
	s.PublishMetrics()
	return s.reviews.Size()
}

// AddReview - validate and index a new review
//
// the rating must be in range and both the product and the customer
// must exist
func (s *Store) AddReview(r *Review) error {
	if !ValidRating(r.Rating) {
		return fault.ErrInvalidRating
	}
	p, err := s.FindProduct(r.ProductID)
	if nil != err {
		return err
	}
	if _, err := s.FindCustomer(r.CustomerID); nil != err {
		return err
	}
	if _, found := s.reviews.Search(r.ID); found {
		return fault.ErrReviewExists
	}
	s.reviews.Insert(r.ID, r)
	p.Reviews.Insert(r)
	s.PublishMetrics()
	s.log.Debugf("review: %d added for product: %d", r.ID, r.ProductID)
	return nil
}

// FindReview - review by id
func (s *Store) FindReview(id int) (*Review, error) {
	r, found := s.reviews.Search(id)
	if !found {
		return nil, fault.ErrReviewNotFound
	}
	return r, nil
}

// EditReview - change a review
//
// an out of range rating or an empty comment leaves that field as it was
func (s *Store) EditReview(id int, rating int, comment string) error {
	r, err := s.FindReview(id)
	if nil != err {
		return err
	}
	if ValidRating(rating) {
		r.Rating = rating
	}
	if "" != comment {
		r.Comment = comment
	}
	return nil
}

// ReviewsByCustomer - a customer's reviews in id order
func (s *Store) ReviewsByCustomer(customerID int) *list.List[*Review] {
	result := list.New[*Review]()
	s.reviews.InOrderTraversal().Each(func(r *Review) bool {
		if r.CustomerID == customerID {
			result.Insert(r)
		}
		return true
	})
	return result
}

// CommonHighRated - products reviewed by both customers whose average
// rating is above four, in the order the first customer reviewed them
func (s *Store) CommonHighRated(customerID1 int, customerID2 int) *list.List[*Product] {
	first := []int{}
	seen := map[int]struct{}{}
	second := map[int]struct{}{}
	s.reviews.InOrderTraversal().Each(func(r *Review) bool {
		if r.CustomerID == customerID1 {
			if _, ok := seen[r.ProductID]; !ok {
				seen[r.ProductID] = struct{}{}
				first = append(first, r.ProductID)
			}
		}
		if r.CustomerID == customerID2 {
			second[r.ProductID] = struct{}{}
		}
		return true
	})

	result := list.New[*Product]()
	for _, id := range first {
		if _, ok := second[id]; !ok {
			continue
		}
		if p, found := s.products.Search(id); found && p.AverageRating() > highRating {
			result.Insert(p)
		}
	}
	return result
}
