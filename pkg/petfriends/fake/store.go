/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fake

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unikorn-cloud/petfriends/pkg/petfriends"
)

var (
	ErrUnauthorized = errors.New("invalid credentials")
	ErrPetNotFound  = errors.New("pet not found")
	ErrPetNotOwned  = errors.New("pet belongs to another user")
)

type account struct {
	id       string
	email    string
	password string
	key      string
}

type petRecord struct {
	pet   petfriends.Pet
	owner string
	// sequence orders listings, higher is newer.
	sequence int
}

// store keeps accounts and pets for the lifetime of the process.
type store struct {
	lock     sync.Mutex
	accounts map[string]*account
	keys     map[string]*account
	pets     map[string]*petRecord
	sequence int
	now      func() time.Time
}

func newStore() *store {
	return &store{
		accounts: map[string]*account{},
		keys:     map[string]*account{},
		pets:     map[string]*petRecord{},
		now:      time.Now,
	}
}

func newKey() string {
	// Keys on the live service are long hex strings.
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

func (s *store) addAccount(email, password string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if a, ok := s.accounts[email]; ok {
		a.password = password
		return
	}

	a := &account{
		id:       uuid.NewString(),
		email:    email,
		password: password,
		key:      newKey(),
	}

	s.accounts[email] = a
	s.keys[a.key] = a
}

// login returns the account key, it is stable across calls like the live service.
func (s *store) login(email, password string) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	a, ok := s.accounts[email]
	if !ok || a.password != password {
		return "", ErrUnauthorized
	}

	return a.key, nil
}

func (s *store) authenticate(key string) (*account, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	a, ok := s.keys[key]
	if !ok || key == "" {
		return nil, ErrUnauthorized
	}

	return a, nil
}

func (s *store) list(a *account, mine bool) []petfriends.Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	records := make([]*petRecord, 0, len(s.pets))

	for _, r := range s.pets {
		if mine && r.owner != a.id {
			continue
		}

		records = append(records, r)
	}

	slices.SortFunc(records, func(a, b *petRecord) int {
		return b.sequence - a.sequence
	})

	pets := make([]petfriends.Pet, len(records))

	for i, r := range records {
		pets[i] = r.pet
	}

	return pets
}

func (s *store) create(a *account, name, animalType, age, photo string) petfriends.Pet {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.sequence++

	now := s.now()

	r := &petRecord{
		pet: petfriends.Pet{
			ID:         uuid.NewString(),
			Name:       name,
			AnimalType: animalType,
			Age:        petfriends.StringOrNumber(age),
			PetPhoto:   photo,
			CreatedAt:  petfriends.StringOrNumber(fmt.Sprintf("%d.%06d", now.Unix(), now.Nanosecond()/1000)),
			UserID:     a.id,
		},
		owner:    a.id,
		sequence: s.sequence,
	}

	s.pets[r.pet.ID] = r

	return r.pet
}

// lookup returns an owned pet, the caller must hold the lock.
func (s *store) lookup(a *account, id string) (*petRecord, error) {
	r, ok := s.pets[id]
	if !ok {
		return nil, ErrPetNotFound
	}

	if r.owner != a.id {
		return nil, ErrPetNotOwned
	}

	return r, nil
}

func (s *store) update(a *account, id, name, animalType, age string) (petfriends.Pet, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	r, err := s.lookup(a, id)
	if err != nil {
		return petfriends.Pet{}, err
	}

	r.pet.Name = name
	r.pet.AnimalType = animalType
	r.pet.Age = petfriends.StringOrNumber(age)

	return r.pet, nil
}

func (s *store) setPhoto(a *account, id, photo string) (petfriends.Pet, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	r, err := s.lookup(a, id)
	if err != nil {
		return petfriends.Pet{}, err
	}

	r.pet.PetPhoto = photo

	return r.pet, nil
}

// delete is idempotent, a missing pet is not an error.
func (s *store) delete(a *account, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.lookup(a, id); err != nil {
		if errors.Is(err, ErrPetNotFound) {
			return nil
		}

		return err
	}

	delete(s.pets, id)

	return nil
}
