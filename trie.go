package trie

import "fmt"

// alphabetSize is the number of child slots per node, one per lowercase
// ASCII letter.
const alphabetSize = 26

// node is a single letter of the trie. The zero label is a sentinel carried
// only by the root; every other node's label matches the slot it occupies
// under its parent. A nil child slot is empty.
type node struct {
	label    byte
	terminal bool
	children [alphabetSize]*node
}

// hasAnyChild reports whether at least one of the 26 child slots is occupied.
func (n *node) hasAnyChild() bool {
	for _, child := range n.children {
		if child != nil {
			return true
		}
	}
	return false
}

// Trie is a prefix tree storing lowercase ASCII words for exact membership
// tests and sorted enumeration. A Trie is not safe for concurrent mutation;
// concurrent reads of a trie that is not being mutated are fine.
type Trie struct {
	root     *node
	size     int
	validate bool
}

// New creates a new empty trie. Input validation is on by default.
func New() *Trie {
	t := new(Trie)
	t.root = new(node)
	t.WithValidation()
	return t
}

// WithValidation sets the Trie to check the input contract on Insert and
// Contains, panicking on violations.
func (t *Trie) WithValidation() *Trie {
	t.validate = true
	return t
}

// WithoutValidation sets the Trie to skip input contract checks. Callers
// that already know their input is valid pay no validation cost; behaviour
// on invalid input is undefined.
func (t *Trie) WithoutValidation() *Trie {
	t.validate = false
	return t
}

// Insert stores word in the trie and returns the trie so that calls chain.
// Inserting a word that is already stored is a no-op. The word must be
// non-empty and consist only of lowercase ASCII letters.
func (t *Trie) Insert(word string) *Trie {
	t.check("Insert", word)
	current := t.root
	for i := 0; i < len(word); i++ {
		slot := word[i] - 'a'
		child := current.children[slot]
		if child == nil {
			child = &node{label: word[i]}
			current.children[slot] = child
		}
		current = child
	}
	if !current.terminal {
		current.terminal = true
		t.size++
	}
	return t
}

// InsertAll stores every given word, in order, and returns the trie.
func (t *Trie) InsertAll(words ...string) *Trie {
	for _, word := range words {
		t.Insert(word)
	}
	return t
}

// Contains reports whether word was previously inserted. Strict prefixes and
// extensions of stored words are not members unless inserted themselves.
// The input contract is the same as Insert's.
func (t *Trie) Contains(word string) bool {
	t.check("Contains", word)
	current := t.root
	for i := 0; i < len(word); i++ {
		current = current.children[word[i]-'a']
		if current == nil {
			return false
		}
	}
	return current.terminal
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.size
}

// IsEmpty reports whether the trie stores no words.
func (t *Trie) IsEmpty() bool {
	return t.size == 0
}

// Words returns every stored word exactly once, in ascending lexicographic
// order. An empty trie yields an empty slice.
func (t *Trie) Words() []string {
	c := &wordCollector{
		path:  make([]byte, 0, 16),
		words: make([]string, 0, t.size),
	}
	c.walk(t.root)
	return c.words
}

// wordCollector accumulates words during a depth-first walk. path holds the
// letters from the root to the current node and must be truncated on return
// from each child, so that sibling branches never see each other's letters.
type wordCollector struct {
	path  []byte
	words []string
}

func (c *wordCollector) walk(n *node) {
	// Slots are visited in ascending index order, which is ascending
	// alphabetical order, so words come out sorted.
	for _, child := range n.children {
		if child == nil {
			continue
		}
		c.path = append(c.path, child.label)
		if child.terminal {
			c.words = append(c.words, string(c.path))
		}
		if child.hasAnyChild() {
			c.walk(child)
		}
		c.path = c.path[:len(c.path)-1]
	}
}

// IsLowercase reports whether every character of s is a lowercase ASCII
// letter. The empty string is vacuously lowercase.
func IsLowercase(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// check enforces the input contract shared by Insert and Contains. It runs
// before any mutation, so a firing check leaves the trie untouched.
func (t *Trie) check(op, word string) {
	if !t.validate {
		return
	}
	if len(word) == 0 {
		panic(op + ": word must be non-empty")
	}
	if !IsLowercase(word) {
		panic(fmt.Sprintf("%s: word must contain only lowercase ASCII letters: %q", op, word))
	}
}
