package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ReportIDPrefix is the externally visible id contract; download requests
// are rejected before hitting the store when the prefix is absent.
const ReportIDPrefix = "RPT-"

const idSuffixLen = 9

// Clock abstracts wall time so generation and rendering timestamps are
// testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// IDGenerator mints report ids of the form "RPT-<unix_ms>-<suffix>". The
// suffix is drawn from a UUID rather than math/rand so concurrent generators
// cannot collide on a shared seed.
type IDGenerator struct {
	clock Clock
}

func NewIDGenerator(clock Clock) *IDGenerator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &IDGenerator{clock: clock}
}

func (g *IDGenerator) NewReportID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLen]
	return fmt.Sprintf("%s%d-%s", ReportIDPrefix, g.clock.Now().UnixMilli(), suffix)
}
