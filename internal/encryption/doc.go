// Package encryption processes files with one-time pads: each encrypted file
// gets a fresh pad of exactly the body length, stored alongside the
// ciphertext. Files are processed concurrently and written atomically.
package encryption
