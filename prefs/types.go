// This file is part of Gopher2e.
//
// Gopher2e is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2e is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2e.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Value is the Go value of a preference.
type Value interface{}

// pref is implemented by every type that can be added to a Disk.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by the atomic preference types. the pre hook can veto a
// new value by returning an error. both hooks run even if the value is
// unchanged.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the function called before a new value is stored.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the function called after a new value is stored.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) store(v *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	v.Store(nv)
	if h.post != nil {
		return h.post(nv)
	}
	return nil
}

// Bool is a boolean preference. Set() accepts a bool or a string; a string
// other than "true" (in any case) is false.
type Bool struct {
	hooks
	value atomic.Value
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.Get().(bool))
}

func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(&p.value, v)
	case string:
		return p.store(&p.value, strings.EqualFold(v, "true"))
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
}

func (p *Bool) Get() Value {
	if v := p.value.Load(); v != nil {
		return v
	}
	return false
}

func (p *Bool) Reset() error {
	return p.Set(false)
}

// String is a string preference. An optional maximum length crops values
// as they are set.
type String struct {
	hooks
	maxLen int
	value  atomic.Value
}

func (p *String) String() string {
	return p.Get().(string)
}

// SetMaxLen sets the maximum length of the string. A value of zero or less
// removes the limit. The current value is cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s, ok := p.value.Load().(string); ok {
		p.value.Store(p.crop(s))
	}
}

func (p *String) crop(s string) string {
	if p.maxLen > 0 && len(s) > p.maxLen {
		return s[:p.maxLen]
	}
	return s
}

func (p *String) Set(v Value) error {
	return p.store(&p.value, p.crop(fmt.Sprintf("%s", v)))
}

func (p *String) Get() Value {
	if v := p.value.Load(); v != nil {
		return v
	}
	return ""
}

func (p *String) Reset() error {
	return p.Set("")
}

// Int is an integer preference. Set() accepts any Go int type or a decimal
// string.
type Int struct {
	hooks
	value atomic.Value
}

func (p *Int) String() string {
	return strconv.Itoa(p.Get().(int))
}

func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(&p.value, v)
	case int32:
		return p.store(&p.value, int(v))
	case int64:
		return p.store(&p.value, int(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to prefs.Int: %w", v, err)
		}
		return p.store(&p.value, n)
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
}

func (p *Int) Get() Value {
	if v := p.value.Load(); v != nil {
		return v
	}
	return 0
}

func (p *Int) Reset() error {
	return p.Set(0)
}

// Generic is a preference whose value lives somewhere else. The set and get
// functions given to NewGeneric() translate between that value and a string.
type Generic struct {
	crit sync.Mutex
	set  func(Value) error
	get  func() Value

	// most recent value passed to Set()
	recent Value
}

// GenericGetValueUndefined can be returned by the get function of a Generic
// preference to indicate that the most recently set value should be used.
const GenericGetValueUndefined = "GenericGetValueUndefined"

// NewGeneric is the only way to create a Generic preference.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	return fmt.Sprintf("%v", p.Get())
}

func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	s := fmt.Sprintf("%v", v)
	p.recent = s
	return p.set(s)
}

func (p *Generic) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	v := p.get()
	if v == GenericGetValueUndefined {
		return p.recent
	}
	p.recent = v
	return v
}

func (p *Generic) Reset() error {
	return p.Set("")
}
