package session

import (
	"encoding/json"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/Derek-Wen/daily-rhythm/internal/store"
)

// DefaultBank is shown one message per finished session
var DefaultBank = []string{
	"you showed up again, that is the whole trick",
	"four lanes, one you",
	"the notes fell and you caught them",
	"same pattern for everyone today, nobody played it like you",
	"tomorrow's pattern is already waiting",
	"steady hands, steady heart",
	"that rhythm looked good on you",
	"one more day on the streak board",
	"d f j k, the best four letters",
	"you are better at this than yesterday",
	"thirty seconds well spent",
	"the tap line missed you",
	"every perfect counts twice when you smile",
	"keep the beat, keep the streak",
	"small daily things add up",
	"see you at midnight in san francisco",
}

// MessagePicker draws messages without repeating one until the whole bank has been
// shown. It uses its own unseeded source, separate from pattern generation.
type MessagePicker struct {
	Bank []string

	used  map[int]bool
	rand  *rand.Rand
	store store.Store

	// Cleared counts how many times the used set was emptied
	Cleared int
}

func NewMessagePicker(bank []string, s store.Store) *MessagePicker {
	m := &MessagePicker{
		Bank:  bank,
		used:  map[int]bool{},
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		store: s,
	}
	m.load()
	return m
}

func (m *MessagePicker) load() {
	if nil == m.store {
		return
	}
	v, ok, err := m.store.Get(store.KeyUsedMessages)
	if nil != err {
		log.Println("unable to read used messages", err)
		return
	}
	if !ok {
		return
	}
	var indices []int
	if err := json.Unmarshal([]byte(v), &indices); nil != err {
		log.Println("unable to parse used messages", err)
		return
	}
	for _, i := range indices {
		if i >= 0 && i < len(m.Bank) {
			m.used[i] = true
		}
	}
}

func (m *MessagePicker) save() {
	if nil == m.store {
		return
	}
	data, err := json.Marshal(m.Used())
	if nil != err {
		log.Println("unable to marshal used messages", err)
		return
	}
	if err := m.store.Set(store.KeyUsedMessages, string(data)); nil != err {
		log.Println("unable to save used messages", err)
	}
}

// Used returns the shown indices in ascending order
func (m *MessagePicker) Used() []int {
	indices := make([]int, 0, len(m.used))
	for i := range m.used {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// Pick returns a message index and text, -1 and "" for an empty bank
func (m *MessagePicker) Pick() (int, string) {
	if len(m.Bank) == 0 {
		return -1, ""
	}
	if len(m.used) >= len(m.Bank) {
		m.used = map[int]bool{}
		m.Cleared++
	}

	available := make([]int, 0, len(m.Bank)-len(m.used))
	for i := range m.Bank {
		if !m.used[i] {
			available = append(available, i)
		}
	}

	index := available[m.rand.Intn(len(available))]
	m.used[index] = true
	m.save()
	return index, m.Bank[index]
}

// Any returns a random message without marking it used
func (m *MessagePicker) Any() string {
	if len(m.Bank) == 0 {
		return ""
	}
	return m.Bank[m.rand.Intn(len(m.Bank))]
}
