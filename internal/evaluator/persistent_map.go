package evaluator

import (
	"hash/fnv"
	"math/bits"
	"sort"
)

// Persistent Hash Array Mapped Trie (HAMT) keyed by binding name.
// Put never modifies the receiver, so a map published in an Environment frame
// can be shared by every closure that captured it.

const (
	hamtBits = 5
	hamtSize = 1 << hamtBits // 32
	hamtMask = hamtSize - 1
)

// PersistentMap is an immutable name -> *Binding map
type PersistentMap struct {
	root  *hamtNode
	count int
}

// hamtNode is a node in the HAMT
type hamtNode struct {
	bitmap uint32        // which indices are populated
	nodes  []interface{} // hamtEntry or *hamtNode
}

// hamtEntry holds a key-value pair
type hamtEntry struct {
	hash  uint32
	key   string
	value *Binding
}

// EmptyMap returns an empty persistent map
func EmptyMap() *PersistentMap {
	return &PersistentMap{}
}

// Len returns the number of entries
func (m *PersistentMap) Len() int {
	if m == nil {
		return 0
	}
	return m.count
}

// Get returns the binding for a key
func (m *PersistentMap) Get(key string) (*Binding, bool) {
	if m == nil || m.root == nil {
		return nil, false
	}
	return m.root.get(hashString(key), key, 0)
}

// Put returns a new map with the key-value pair added/updated
func (m *PersistentMap) Put(key string, value *Binding) *PersistentMap {
	if m == nil {
		m = EmptyMap()
	}
	hash := hashString(key)

	root := m.root
	if root == nil {
		root = &hamtNode{}
	}
	newRoot, added := root.put(hash, key, value, 0)

	newCount := m.count
	if added {
		newCount++
	}
	return &PersistentMap{root: newRoot, count: newCount}
}

// Keys returns all keys in sorted order
func (m *PersistentMap) Keys() []string {
	keys := make([]string, 0, m.Len())
	if m != nil && m.root != nil {
		m.root.collectKeys(&keys)
	}
	sort.Strings(keys)
	return keys
}

// --- hamtNode methods ---

func (n *hamtNode) get(hash uint32, key string, shift uint) (*Binding, bool) {
	if shift >= 32 {
		// Collision bucket search
		for _, node := range n.nodes {
			if entry, ok := node.(hamtEntry); ok && entry.key == key {
				return entry.value, true
			}
		}
		return nil, false
	}

	idx := (hash >> shift) & hamtMask
	bit := uint32(1) << idx
	if n.bitmap&bit == 0 {
		return nil, false
	}

	switch v := n.nodes[popcount(n.bitmap&(bit-1))].(type) {
	case hamtEntry:
		if v.hash == hash && v.key == key {
			return v.value, true
		}
	case *hamtNode:
		return v.get(hash, key, shift+hamtBits)
	}
	return nil, false
}

func (n *hamtNode) clone() *hamtNode {
	newNode := &hamtNode{
		bitmap: n.bitmap,
		nodes:  make([]interface{}, len(n.nodes)),
	}
	copy(newNode.nodes, n.nodes)
	return newNode
}

func (n *hamtNode) put(hash uint32, key string, value *Binding, shift uint) (*hamtNode, bool) {
	newNode := n.clone()

	// Exhausted hash bits: this node is a collision bucket
	if shift >= 32 {
		for i, node := range newNode.nodes {
			if entry, ok := node.(hamtEntry); ok && entry.key == key {
				newNode.nodes[i] = hamtEntry{hash: hash, key: key, value: value}
				return newNode, false
			}
		}
		newNode.nodes = append(newNode.nodes, hamtEntry{hash: hash, key: key, value: value})
		return newNode, true
	}

	idx := (hash >> shift) & hamtMask
	bit := uint32(1) << idx
	pos := popcount(n.bitmap & (bit - 1))

	if n.bitmap&bit == 0 {
		newNode.bitmap |= bit
		newNode.nodes = append(newNode.nodes, nil)
		copy(newNode.nodes[pos+1:], newNode.nodes[pos:])
		newNode.nodes[pos] = hamtEntry{hash: hash, key: key, value: value}
		return newNode, true
	}

	switch v := newNode.nodes[pos].(type) {
	case hamtEntry:
		if v.hash == hash && v.key == key {
			newNode.nodes[pos] = hamtEntry{hash: hash, key: key, value: value}
			return newNode, false
		}
		// Different keys share this slot: push both entries down one level
		child, _ := (&hamtNode{}).put(v.hash, v.key, v.value, shift+hamtBits)
		child, _ = child.put(hash, key, value, shift+hamtBits)
		newNode.nodes[pos] = child
		return newNode, true
	case *hamtNode:
		newChild, added := v.put(hash, key, value, shift+hamtBits)
		newNode.nodes[pos] = newChild
		return newNode, added
	}
	return newNode, false
}

func (n *hamtNode) collectKeys(keys *[]string) {
	for _, node := range n.nodes {
		switch v := node.(type) {
		case hamtEntry:
			*keys = append(*keys, v.key)
		case *hamtNode:
			v.collectKeys(keys)
		}
	}
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

func popcount(x uint32) int {
	return bits.OnesCount32(x)
}
