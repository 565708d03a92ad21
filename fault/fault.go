// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AccessError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountExists                = ExistsError("vesting account already exists")
	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrIdentityNameAlreadyExists    = ExistsError("identity name already exists")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrReplayedRequest              = ExistsError("request already processed")

	ErrDecryptNotGranted = AccessError("decrypt not granted")
	ErrHandleNotAllowed  = AccessError("ciphertext handle not allowed")
	ErrNotAuthorized     = AccessError("not authorized")
	ErrNotOperator       = AccessError("spender is not an operator")

	ErrInvalidBeneficiary    = InvalidError("beneficiary cannot be zero address")
	ErrInvalidChain          = InvalidError("invalid chain")
	ErrInvalidCiphertext     = InvalidError("invalid ciphertext")
	ErrInvalidConfiguration  = InvalidError("invalid configuration")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidCursor         = InvalidError("invalid cursor")
	ErrInvalidDuration       = InvalidError("duration must be positive")
	ErrInvalidHandle         = InvalidError("invalid ciphertext handle")
	ErrInvalidHandleKind     = InvalidError("invalid ciphertext handle kind")
	ErrInvalidIdentity       = InvalidError("invalid identity")
	ErrInvalidIPAddress      = InvalidError("invalid IP address")
	ErrInvalidKeyFile        = InvalidError("invalid key file")
	ErrInvalidOwner          = InvalidError("owner cannot be zero address")
	ErrInvalidPortNumber     = InvalidError("invalid port number")
	ErrInvalidProof          = InvalidError("invalid input proof")
	ErrInvalidSignature      = InvalidError("invalid signature")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidTimestamp      = InvalidError("request timestamp out of range")
	ErrInvalidTokenName      = InvalidError("invalid token name")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrOverflow              = InvalidError("arithmetic overflow")
	ErrRequestSignerMismatch = InvalidError("request signer does not match caller")
	ErrZeroDenominator       = InvalidError("zero denominator")

	ErrInvalidHandleLength   = LengthError("invalid ciphertext handle length")
	ErrInvalidIdentityLength = LengthError("invalid identity length")
	ErrInvalidRecordLength   = LengthError("invalid record length")

	ErrAccountNotFound      = NotFoundError("vesting account not found")
	ErrHandleNotFound       = NotFoundError("ciphertext handle not found")
	ErrIdentityNameNotFound = NotFoundError("identity name not found")
	ErrTokenNotFound        = NotFoundError("token not found")

	ErrCryptoFailed    = ProcessError("crypto failed")
	ErrDatabaseVersion = ProcessError("incompatible database version")
	ErrNotADirectory   = ProcessError("not a directory")
	ErrNotInitialised  = ProcessError("not initialised")
	ErrNotPrivateKey   = ProcessError("not a private key")
	ErrRateLimiting    = ProcessError("rate limiting")
	ErrReadOnly        = ProcessError("database is read only")
	ErrReentrantCall   = ProcessError("reentrant call")
	ErrSealFailed      = ProcessError("ciphertext seal failed")
	ErrTransferFailed  = ProcessError("transfer failed")
	ErrWrongNetwork    = ProcessError("wrong network")
	ErrWrongPassword   = ProcessError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccessError) Error() string   { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrAccess(e error) bool   { _, ok := e.(AccessError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

// IsFault - true if the error is one of the classes above
func IsFault(e error) bool {
	switch e.(type) {
	case AccessError, ExistsError, InvalidError, LengthError, NotFoundError, ProcessError:
		return true
	default:
		return false
	}
}
