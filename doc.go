/*
Package trie provides a prefix tree over lowercase ASCII words.
It supports insertion, exact-word membership tests and enumeration of
all stored words in lexicographic order.
*/
package trie
