// Package otp implements a XOR based one-time pad over byte slices.
//
// A pad is generated once from the operating system's CSPRNG, must be exactly
// as long as the data it protects, and must never be reused for a second
// message. Encrypt and Decrypt are the same operation since XOR is its own
// inverse. The package holds no state: inputs are borrowed, outputs are
// freshly allocated, and nothing is retained between calls.
package otp
