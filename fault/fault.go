// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// registry errors - keep in alphabetic order
var (
	AddressAlreadyInUse = ExistsError("address already in use")
	AddressMismatch     = InvalidError("address does not match derived address")
	AssetInactive       = RecordError("asset profile is not active")
	AssetNotFound       = NotFoundError("asset profile not found")
	CriteriaTooLong     = LengthError("criteria text is too long")
	DescriptionTooLong  = LengthError("description is too long")
	EvidenceTooLong     = LengthError("evidence text is too long")
	ExpiryInPast        = InvalidError("expiry date cannot be in the past")
	FrameworkInactive   = RecordError("trust framework is not active")
	FrameworkNotFound   = NotFoundError("trust framework not found")
	InvalidAssetType    = InvalidError("invalid asset type")
	InvalidTrustScore   = InvalidError("trust score must be between 0 and 100")
	MetadataUriTooLong  = LengthError("metadata uri is too long")
	NameTooLong         = LengthError("name is too long")
	TooManyCriteria     = LengthError("too many criteria")
	TrustNotFound       = NotFoundError("trust record not found")
	Unauthorized        = AuthorisationError("unauthorized: only framework authority can update")
)

// address derivation and record layout errors - keep in alphabetic order
var (
	AddressOnCurve        = InvalidError("derived address is a valid public key")
	BufferTooSmall        = RecordError("record buffer too small")
	CannotDecodeAddress   = InvalidError("cannot decode address")
	InvalidBoolean        = RecordError("invalid boolean value")
	InvalidOptionTag      = RecordError("invalid option tag")
	MaxSeedLengthExceeded = LengthError("seed length exceeded")
	NoViableBump          = ProcessError("unable to find a viable bump")
	NotRecordPack         = RecordError("not a packed record")
	RecordTypeMismatch    = RecordError("record type mismatch")
	TooManySeeds          = LengthError("too many seeds")
	UnknownDiscriminator  = RecordError("unknown record discriminator")
)

// account, instruction and signature errors - keep in alphabetic order
var (
	CannotDecodeAccount        = InvalidError("cannot decode account")
	CannotDecodePrivateKey     = InvalidError("cannot decode private key")
	ChecksumMismatch           = InvalidError("checksum mismatch")
	InstructionAlreadySeen     = ExistsError("instruction already seen")
	InstructionTypeNotExpected = InvalidError("instruction type not expected")
	InvalidKeyLength           = InvalidError("invalid key length")
	InvalidKeyType             = InvalidError("invalid key type")
	InvalidSignature           = InvalidError("invalid signature")
	MissingCaller              = InvalidError("missing caller account")
	NotInstructionPack         = RecordError("not an instruction pack")
	NotPrivateKey              = InvalidError("not a private key")
	NotPublicKey               = InvalidError("not a public key")
	SignatureTooLong           = LengthError("signature too long")
	TimestampOutOfWindow       = InvalidError("timestamp outside accepted window")
	WrongNetworkForPublicKey   = InvalidError("wrong network for public key")
	WrongNetworkForPrivateKey  = InvalidError("wrong network for private key")
)

// node errors - keep in alphabetic order
var (
	AlreadyInitialised      = ProcessError("already initialised")
	CertificateFileExists   = ExistsError("certificate file already exists")
	DatabaseIsNotSet        = ProcessError("database is not set")
	IdentityNotFound        = NotFoundError("identity name not found")
	IncompatibleVersion     = ProcessError("incompatible database version")
	InvalidChain            = InvalidError("invalid chain")
	InvalidCount            = InvalidError("invalid count")
	InvalidCursor           = InvalidError("invalid cursor")
	InvalidIpAddress        = InvalidError("invalid IP address")
	InvalidMode             = InvalidError("invalid mode")
	InvalidStructPointer    = InvalidError("invalid struct pointer")
	KeyFileExists           = ExistsError("key file already exists")
	MissingParameters       = InvalidError("missing parameters")
	NotAvailableWhenStopped = ProcessError("not available when stopped")
	NotInitialised          = ProcessError("not initialised")
	RateLimiting            = InvalidError("rate limiting")
	TransactionAlreadyOpen  = ProcessError("transaction already in use")
	TransactionNotOpen      = ProcessError("transaction not open")
	WrongPassword           = InvalidError("wrong password")
)

// client errors - keep in alphabetic order
var (
	CryptoFailed              = ProcessError("crypto failed")
	IdentityNameAlreadyExists = ExistsError("identity name already exists")
	IncompatibleOptions       = InvalidError("incompatible options")
	InvalidPasswordLength     = LengthError("invalid password length")
	NoConnectionsAvailable    = ProcessError("no connections available")
	NoPrivateKey              = InvalidError("identity has no private key")
	PasswordMismatch          = InvalidError("password mismatch")
	UnmarshalTextFailed       = InvalidError("unmarshal text failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
