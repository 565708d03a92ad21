// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = 20 byte identity of an account, token or party
// 4. handle       = 32 byte ciphertext handle
// 5. count        = successive index value as big endian uint64 (8 bytes)
// 6. *others*     = byte values of various length
//
// Vesting accounts:
//
//   A ++ account id            - vesting account record
//                                data: owner ++ beneficiary ++ token ++ start ++ duration
//   L ++ account id            - encrypted ledger
//                                data: total allocation handle ++ released handle
//   K ++ name                  - named counters
//                                data: count
//
// Party indexes:
//
//   N ++ owner                 - next count value to use for appending to owned accounts
//                                data: count
//   O ++ owner ++ count        - list of owned accounts
//                                data: account id
//   M ++ beneficiary           - next count value for beneficiary accounts
//                                data: count
//   B ++ beneficiary ++ count  - list of accounts paying a beneficiary
//                                data: account id
//
// Tokens:
//
//   R ++ token id              - registered confidential tokens
//                                data: name
//   T ++ token id ++ holder    - encrypted balance
//                                data: handle
//   P ++ token id ++ holder ++ operator
//                              - operator approval
//                                data: expiry timestamp
//
// Coprocessor:
//
//   X ++ handle                - sealed ciphertext
//                                data: nonce ++ sealed value
//   G ++ handle ++ id          - decrypt and compute grants
//                                data: 0x01
//
// Events:
//
//   E ++ count                 - event log
//                                data: JSON event
//
// Testing:
//   Z ++ key                   - testing data
package storage
