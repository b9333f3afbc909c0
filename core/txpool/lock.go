// Copyright 2023 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package txpool

import "sync"

// upgradableMu is a reader/writer lock with upgrade support. Go's
// sync.RWMutex has no native way to promote a held read lock to a write
// lock, so Upgrade releases the read lock and reacquires exclusively; the
// auxiliary upgrade mutex serializes concurrent upgraders so that two
// readers racing to upgrade cannot deadlock each other waiting on the same
// RWMutex from opposite directions.
type upgradableMu struct {
	rw      sync.RWMutex
	upgrade sync.Mutex
}

func (u *upgradableMu) RLock()   { u.rw.RLock() }
func (u *upgradableMu) RUnlock() { u.rw.RUnlock() }
func (u *upgradableMu) Lock()    { u.rw.Lock() }
func (u *upgradableMu) Unlock()  { u.rw.Unlock() }

// Upgrade converts a held read lock into a write lock. The caller must hold
// the read lock on entry and holds the write lock on return. Other writers
// may run between the release of the read lock and the acquisition of the
// write lock.
func (u *upgradableMu) Upgrade() {
	u.rw.RUnlock()
	u.upgrade.Lock()
	u.rw.Lock()
	u.upgrade.Unlock()
}

// Downgrade converts a held write lock back into a read lock.
func (u *upgradableMu) Downgrade() {
	u.rw.Unlock()
	u.rw.RLock()
}
