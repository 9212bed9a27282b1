package account

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// Domain errors for carrier account operations.
var (
	// ErrCredentialsAreRequired is returned when creating an account without an encrypted credentials blob.
	ErrCredentialsAreRequired = errs.NewValueIsRequiredError("credentials ciphertext")
	// ErrAccountInactive is returned when a deactivated account is used for rating or booking.
	ErrAccountInactive = errors.New("carrier account is inactive")
	// ErrAccountIsNotConstructed is returned when using an improperly initialized CarrierAccount.
	ErrAccountIsNotConstructed = errors.New("CarrierAccount must be created via NewCarrierAccount constructor")
)

// CarrierAccount represents one user's credentials and configuration for a
// single shipping provider. It is an aggregate root owned by exactly one
// user, which is the basis for tenant isolation in rate shopping.
//
// Business rules:
//   - Credentials are stored only as an opaque ciphertext blob produced by
//     the vault; the aggregate never sees or exposes plaintext.
//   - Accounts are deactivated, never deleted, so booking history stays
//     attributable to the account that produced it.
//   - The provider tag is a closed enumeration (see Provider).
type CarrierAccount struct {
	// id uniquely identifies the carrier account
	id kernel.UUID
	// userID is the owning user; only this user's requests may use the account
	userID kernel.UUID
	// provider selects the adapter variant constructed for this account
	provider Provider
	// credentialsCiphertext is the vault-sealed credentials blob
	credentialsCiphertext string
	// accountNumber is the optional provider-side account number
	accountNumber string
	// isActive is false once the account has been deactivated
	isActive bool
	// guard ensures the account was properly constructed
	guard guard.ConstructorGuard
}

// NewCarrierAccount creates an active CarrierAccount for a user.
// The credentials must already be sealed by the vault; this constructor
// deliberately has no way to accept plaintext.
func NewCarrierAccount(
	id kernel.UUID,
	userID kernel.UUID,
	provider Provider,
	credentialsCiphertext string,
	accountNumber string,
) (*CarrierAccount, error) {
	account := &CarrierAccount{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setUserID(userID),
		account.setProvider(provider),
		account.setCredentialsCiphertext(credentialsCiphertext),
	); err != nil {
		return nil, err
	}

	account.accountNumber = accountNumber
	account.isActive = true

	return account, nil
}

// RestoreCarrierAccount reconstructs a CarrierAccount from persistent
// storage, including its activity flag.
func RestoreCarrierAccount(
	id kernel.UUID,
	userID kernel.UUID,
	provider Provider,
	credentialsCiphertext string,
	accountNumber string,
	isActive bool,
) (*CarrierAccount, error) {
	account, err := NewCarrierAccount(id, userID, provider, credentialsCiphertext, accountNumber)
	if err != nil {
		return nil, err
	}

	account.isActive = isActive
	return account, nil
}

// Validate checks if the CarrierAccount was properly constructed.
func (a *CarrierAccount) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by identity.
func (a *CarrierAccount) IsEqual(other *CarrierAccount) bool {
	if other == nil {
		return false
	}
	return a.id.IsEqual(other.id)
}

// ID returns the unique identifier of the account.
func (a *CarrierAccount) ID() kernel.UUID {
	return a.id
}

// UserID returns the identifier of the owning user.
func (a *CarrierAccount) UserID() kernel.UUID {
	return a.userID
}

// Provider returns the provider tag of the account.
func (a *CarrierAccount) Provider() Provider {
	return a.provider
}

// CredentialsCiphertext returns the vault-sealed credentials blob.
func (a *CarrierAccount) CredentialsCiphertext() string {
	return a.credentialsCiphertext
}

// AccountNumber returns the optional provider-side account number.
func (a *CarrierAccount) AccountNumber() string {
	return a.accountNumber
}

// IsActive reports whether the account may be used for rating and booking.
func (a *CarrierAccount) IsActive() bool {
	return a.isActive
}

// IsOwnedBy reports whether the account belongs to the given user.
func (a *CarrierAccount) IsOwnedBy(userID kernel.UUID) bool {
	return a.userID.IsEqual(userID)
}

// Deactivate marks the account as unusable for new rating and booking
// requests. The row is preserved for audit history; deactivation is
// idempotent and cannot be reversed through the domain model.
func (a *CarrierAccount) Deactivate() {
	a.isActive = false
}

// EnsureUsable verifies the account can serve a rating or booking request.
// Returns ErrAccountInactive for deactivated accounts.
func (a *CarrierAccount) EnsureUsable() error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.isActive {
		return ErrAccountInactive
	}
	return nil
}

// setID sets the account identifier with validation.
func (a *CarrierAccount) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	a.id = id
	return nil
}

// setUserID sets the owning user identifier with validation.
func (a *CarrierAccount) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	a.userID = userID
	return nil
}

// setProvider sets the provider tag with validation.
func (a *CarrierAccount) setProvider(provider Provider) error {
	if err := provider.Validate(); err != nil {
		return err
	}

	a.provider = provider
	return nil
}

// setCredentialsCiphertext sets the sealed credentials blob with validation.
func (a *CarrierAccount) setCredentialsCiphertext(ciphertext string) error {
	if ciphertext == "" {
		return ErrCredentialsAreRequired
	}

	a.credentialsCiphertext = ciphertext
	return nil
}
