package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/cgx-claimer/internal/domain"
)

type DelayPolicy string

const (
	// DelayPolicyLast keeps the delay returned by the last account of a
	// pass; every other account's timer is discarded.
	DelayPolicyLast DelayPolicy = "last"
	// DelayPolicyMin waits for the soonest timer across all accounts.
	DelayPolicyMin DelayPolicy = "min"
)

func ParseDelayPolicy(raw string) (DelayPolicy, error) {
	policy := DelayPolicy(raw)
	switch policy {
	case DelayPolicyLast, DelayPolicyMin:
		return policy, nil
	case "":
		return DelayPolicyLast, nil
	default:
		return "", fmt.Errorf("%w %q (want last or min)", domain.ErrUnknownDelay, raw)
	}
}

const (
	DefaultSleepInterval = 2 * time.Hour
	DefaultStepDelay     = time.Second
	DefaultJitterMin     = 5 * time.Second
	DefaultJitterMax     = 35 * time.Second
)

type Config struct {
	// SleepInterval is the delay contributed by an account that failed to
	// authenticate.
	SleepInterval time.Duration
	// StepDelay separates the claim and restart calls.
	StepDelay   time.Duration
	JitterMin   time.Duration
	JitterMax   time.Duration
	DelayPolicy DelayPolicy
}

func DefaultConfig() Config {
	return Config{
		SleepInterval: DefaultSleepInterval,
		StepDelay:     DefaultStepDelay,
		JitterMin:     DefaultJitterMin,
		JitterMax:     DefaultJitterMax,
		DelayPolicy:   DelayPolicyLast,
	}
}

func (c Config) Validate() error {
	if c.SleepInterval <= 0 {
		return errors.New("sleep interval must be positive")
	}
	if c.StepDelay < 0 {
		return errors.New("step delay must not be negative")
	}
	if c.JitterMin < 0 {
		return errors.New("jitter min must not be negative")
	}
	if c.JitterMax <= c.JitterMin {
		return fmt.Errorf("jitter max (%s) must be greater than jitter min (%s)", c.JitterMax, c.JitterMin)
	}
	if _, err := ParseDelayPolicy(string(c.DelayPolicy)); err != nil {
		return err
	}

	return nil
}
