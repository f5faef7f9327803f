// Command example generates a keypair, proves knowledge of the secret key,
// verifies the proof, and prints timings along with the encoded proof.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/taurusgroup/dlog-proof/pkg/math/sample"
	"github.com/taurusgroup/dlog-proof/pkg/zk/dlog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	const (
		sid = "sid"
		pid = uint32(1)
	)

	x, y := sample.ScalarPointPair(rand.Reader)

	start := time.Now()
	proof := dlog.Prove(rand.Reader, sid, pid, x, y)
	log.Info().Dur("took", time.Since(start)).Msg("proof computed")

	start = time.Now()
	ok := proof.Verify(sid, pid, y)
	log.Info().Dur("took", time.Since(start)).Bool("ok", ok).Msg("proof verified")
	if !ok {
		log.Fatal().Msg("verification failed")
	}

	data, err := proof.MarshalBinary()
	if err != nil {
		log.Fatal().Err(err).Msg("encode proof")
	}
	log.Info().Int("bytes", len(data)).Str("proof", hex.EncodeToString(data)).Msg("proof encoded")
}
