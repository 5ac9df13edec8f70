// Command lstpq demonstrates the lst package: it builds a priority
// queue of randomly generated, UUID-tagged records, drains it in
// priority order, and logs the LST's structural debug events —
// capacity expansion and pivot-stack flattening.
package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gaarutyunov/lst-go/lst"
)

// record is an example of a caller-provided element type: it carries an
// identity (ID) distinct from the field the comparator examines
// (Priority), plus the LST bookkeeping field.
type record struct {
	ID       uuid.UUID
	Priority int
	handle   int
}

func (r *record) LSTIndex() int     { return r.handle }
func (r *record) SetLSTIndex(i int) { r.handle = i }

func byPriority(a, b *record) int {
	switch {
	case a.Priority < b.Priority:
		return -1
	case a.Priority > b.Priority:
		return 1
	default:
		return 0
	}
}

func main() {
	count := flag.Int("n", 64, "number of records to insert")
	flag.Parse()

	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	log := zap.Must(logConfig.Build())
	defer log.Sync()
	log = log.Named("lstpq")

	q, err := lst.New[*record](byPriority, lst.WithLogger[*record](log))
	if err != nil {
		log.Fatal("failed to create priority queue", zap.Error(err))
	}

	records := make([]*record, *count)
	for i := range records {
		records[i] = &record{
			ID:       uuid.New(),
			Priority: rand.Intn(1 << 20),
		}
	}

	for _, r := range records {
		if err := q.Insert(r); err != nil {
			log.Fatal("insert failed", zap.String("id", r.ID.String()), zap.Error(err))
		}
	}
	log.Info("inserted records", zap.Int("count", q.NumElements()))

	for q.NumElements() > 0 {
		r, err := q.Pop()
		if err != nil {
			log.Fatal("pop failed", zap.Error(err))
		}
		fmt.Printf("%d\t%s\n", r.Priority, r.ID)
	}
}
