// Package aes implements the AES block cipher core as described in
// FIPS 197: key expansion and single-block encryption/decryption under
// 128-, 192-, and 256-bit keys.
//
// The package favors the T-table formulation of AES, folding SubBytes,
// ShiftRows, and MixColumns into eight 256-entry, 32-bit lookup tables
// (Enc0..Enc3 for encryption, Dec0..Dec3 for decryption). This is the
// same trick FIPS 197-derived reference code and most production
// bytewise AES implementations use, and it is what makes the inverse
// key schedule (§4.3) necessary: middle-round decryption keys must be
// pre-transformed with InvMixColumns so they can be XORed directly
// against Dec-table output.
//
// When the host CPU exposes AES-NI, Engine dispatches to an
// assembly-backed implementation built on the native AES round
// instructions instead; both backends are required to agree bit for
// bit. Modes of operation, padding, and authenticated encryption are
// explicitly out of scope here — see the blockcipher package for a
// minimal example of composing this core into ECB/CBC/CTR.
//
// This package does not attempt to be constant-time: the T-table
// lookups have data-dependent cache behavior. Deployments that need
// side-channel resistance should prefer the hardware backend
// exclusively, or substitute a bitsliced implementation.
package aes
