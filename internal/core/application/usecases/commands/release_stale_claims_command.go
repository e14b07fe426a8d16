package commands

import (
	"errors"
	"time"

	"letterpost/internal/pkg/guard"
)

var (
	ErrReleaseStaleClaimsCommandIsNotConstructed = errors.New(
		"ReleaseStaleClaimsCommand must be created via NewReleaseStaleClaimsCommand constructor",
	)
	ErrClaimTTLIsInvalid = errors.New("claim TTL must be greater than 0")
)

// ReleaseStaleClaimsCommand represents a sweep over accepted tasks whose
// claim has been held longer than the given TTL without a collection scan.
// Issued periodically by the scheduled claim-release job.
//
// Example:
//
//	cmd, err := NewReleaseStaleClaimsCommand(30 * time.Minute)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewReleaseStaleClaimsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("stale claim sweep failed: %v", err)
//	}
type ReleaseStaleClaimsCommand struct { //nolint:recvcheck //using for validation
	claimTTL time.Duration

	guard guard.ConstructorGuard
}

// NewReleaseStaleClaimsCommand creates a command to release claims older
// than claimTTL. Returns ErrClaimTTLIsInvalid for non-positive durations.
func NewReleaseStaleClaimsCommand(claimTTL time.Duration) (ReleaseStaleClaimsCommand, error) {
	releaseCommand := ReleaseStaleClaimsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := releaseCommand.setClaimTTL(claimTTL); err != nil {
		return ReleaseStaleClaimsCommand{}, err
	}

	return releaseCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseStaleClaimsCommandIsNotConstructed if validation fails.
func (c ReleaseStaleClaimsCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStaleClaimsCommandIsNotConstructed)
}

// ClaimTTL returns how long a claim may sit without progress before the
// sweep returns the task to the available pool.
func (c ReleaseStaleClaimsCommand) ClaimTTL() time.Duration {
	return c.claimTTL
}

func (c *ReleaseStaleClaimsCommand) setClaimTTL(claimTTL time.Duration) error {
	if claimTTL <= 0 {
		return ErrClaimTTLIsInvalid
	}

	c.claimTTL = claimTTL
	return nil
}
