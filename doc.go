// Package daftar keeps the books of a small business: bank accounts, the
// cash movements against them, and the side registries (checks, debts,
// phone-number inventory) that go with them. It is local-first and
// auditable; everything lives in human-readable JSONL snapshots under one
// data directory.
//
// The core is the balance engine, [Book]: the only mutator of account
// balances. It validates every candidate transaction before touching state
// and applies the exact algebraic inverse on deletion, which keeps each
// balance equal to its opening balance plus the signed sum of the account's
// stored transactions at all times. [Ledger.Audit] re-derives that sum to
// check a data directory offline.
//
// Amounts are exact whole rials ([Money], no binary floating point), and
// user-facing dates are Jalali (package jalali), as the books of the
// business are kept.
//
// This package is the foundational logic for the daftar command-line tool.
package daftar
