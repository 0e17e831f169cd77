// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package sponsor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/optakt/lto-rosetta/models/lto"
)

// RecordName is the name of the record holding the full list of sponsorships.
const RecordName = "sponsors"

// Ledger keeps track of which accounts pay the fees of which other accounts.
// The whole list of sponsorships is loaded on every read and rewritten on every
// write; all writes go through a single mutex, so that concurrent updates can
// not overwrite each other.
type Ledger struct {
	store Store
	mutex sync.Mutex
}

// New creates a sponsor ledger persisting its records in the given store.
func New(store Store) *Ledger {
	l := Ledger{
		store: store,
	}
	return &l
}

// Resolve returns the sponsor paying the fees of the given address at the given
// height. Among the sponsorships of the address granted at or below the height,
// the one with the highest height wins; among equal heights, the last granted
// one wins.
func (l *Ledger) Resolve(address string, height uint64) (string, bool, error) {

	sponsorships, err := l.load()
	if err != nil {
		return "", false, err
	}

	var match *lto.Sponsorship
	for i := range sponsorships {
		sponsorship := &sponsorships[i]
		if sponsorship.Recipient != address || sponsorship.Height > height {
			continue
		}
		if match == nil || sponsorship.Height >= match.Height {
			match = sponsorship
		}
	}
	if match == nil {
		return "", false, nil
	}

	return match.Sponsor, true, nil
}

// Grant records that the sponsor pays the fees of the recipient as of the given
// height. Granting an existing sponsorship again has no effect.
func (l *Ledger) Grant(recipient string, sponsor string, height uint64) error {
	return l.Apply(lto.Grant(recipient, sponsor, height))
}

// Revoke removes all sponsorships of the recipient by the sponsor.
func (l *Ledger) Revoke(sponsor string, recipient string) error {
	return l.Apply(lto.Revoke(sponsor, recipient))
}

// Apply applies the given effects in order, and persists the result once.
func (l *Ledger) Apply(effects ...lto.Effect) error {

	if len(effects) == 0 {
		return nil
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	sponsorships, err := l.load()
	if err != nil {
		return err
	}

	for _, effect := range effects {
		switch effect.Kind {
		case lto.EffectGrant:
			sponsorships = grant(sponsorships, effect)
		case lto.EffectRevoke:
			sponsorships = revoke(sponsorships, effect)
		default:
			return fmt.Errorf("unknown sponsorship effect (kind: %d)", effect.Kind)
		}
	}

	if len(sponsorships) == 0 {
		err = l.store.Remove(RecordName)
	} else {
		err = l.store.Save(RecordName, sponsorships)
	}
	if err != nil {
		return fmt.Errorf("could not persist sponsorships: %w", err)
	}

	return nil
}

// Sponsorships returns all sponsorships currently on record.
func (l *Ledger) Sponsorships() ([]lto.Sponsorship, error) {
	return l.load()
}

func (l *Ledger) load() ([]lto.Sponsorship, error) {
	var sponsorships []lto.Sponsorship
	err := l.store.Retrieve(RecordName, &sponsorships)
	if errors.Is(err, lto.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load sponsorships: %w", err)
	}
	return sponsorships, nil
}

func grant(sponsorships []lto.Sponsorship, effect lto.Effect) []lto.Sponsorship {
	record := lto.Sponsorship{
		Recipient: effect.Recipient,
		Sponsor:   effect.Sponsor,
		Height:    effect.Height,
	}
	for _, sponsorship := range sponsorships {
		if sponsorship == record {
			return sponsorships
		}
	}
	return append(sponsorships, record)
}

func revoke(sponsorships []lto.Sponsorship, effect lto.Effect) []lto.Sponsorship {
	filtered := sponsorships[:0]
	for _, sponsorship := range sponsorships {
		if sponsorship.Sponsor == effect.Sponsor && sponsorship.Recipient == effect.Recipient {
			continue
		}
		filtered = append(filtered, sponsorship)
	}
	return filtered
}
