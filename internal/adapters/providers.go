package adapters

import (
	"log/slog"
	"os"

	"github.com/google/wire"
	"github.com/trebuchet-org/chainconf/internal/adapters/anvil"
	"github.com/trebuchet-org/chainconf/internal/adapters/blockchain"
	"github.com/trebuchet-org/chainconf/internal/adapters/progress"
	"github.com/trebuchet-org/chainconf/internal/adapters/signer"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// ProvideAnvilRunner provides a runner that streams node output to the terminal
func ProvideAnvilRunner(log *slog.Logger) *anvil.Runner {
	r := anvil.NewRunner(log)
	r.SetOutput(os.Stdout, os.Stderr)
	return r
}

// BlockchainSet provides RPC-backed implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewProber,
	wire.Bind(new(usecase.NetworkProber), new(*blockchain.Prober)),
)

// SignerSet provides key handling implementations
var SignerSet = wire.NewSet(
	signer.NewDeriver,
	wire.Bind(new(usecase.AddressDeriver), new(*signer.Deriver)),
)

// AnvilSet provides the local node runner
var AnvilSet = wire.NewSet(
	ProvideAnvilRunner,
	wire.Bind(new(usecase.NodeRunner), new(*anvil.Runner)),
)

// ProgressSet provides progress reporting
var ProgressSet = wire.NewSet(
	progress.ProvideProgressSink,
)

// AllAdapters combines all adapter sets
var AllAdapters = wire.NewSet(
	BlockchainSet,
	SignerSet,
	AnvilSet,
	ProgressSet,
)
