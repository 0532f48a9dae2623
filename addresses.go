package usdc

import "github.com/selesy/usdc/pkg/chain"

// Native (or canonical bridged, where no native deployment exists) USDC
// contract addresses.  Mainnets and testnets are maintained independently.
const (
	// https://arbiscan.io/token/0xaf88d065e77c8cC2239327C5EDb3A432268e5831
	ArbitrumUSDC = "0xaf88d065e77c8cC2239327C5EDb3A432268e5831"
	// https://sepolia.arbiscan.io/token/0x75faf114eafb1BDbe2F0316DF893fd58CE46AA4d
	ArbitrumSepoliaUSDC = "0x75faf114eafb1BDbe2F0316DF893fd58CE46AA4d"
	// https://debank.com/token/avax/0xb97ef9ef8734c71904d8002f8b6bc66dd9c48a6e/overview
	AvalancheUSDC = "0xb97ef9ef8734c71904d8002f8b6bc66dd9c48a6e"
	// https://basescan.org/token/0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913
	BaseUSDC = "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"
	// https://base-sepolia.blockscout.com/address/0x036CbD53842c5426634e7929541eC2318f3dCF7e
	BaseSepoliaUSDC = "0x036CbD53842c5426634e7929541eC2318f3dCF7e"
	// https://bscscan.com/token/0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d
	BSCUSDC = "0x8AC76a51cc950d9822D68b83fE1Ad97B32Cd580d"
	// https://etherscan.io/token/0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48
	EthereumUSDC = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	// https://sepolia.etherscan.io/address/0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238
	EthereumSepoliaUSDC = "0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238"
	// https://www.oklink.com/fantom/token/0x04068da6c83afcfa0e13ba15a6696662335d5b75
	FantomUSDC = "0x04068da6c83afcfa0e13ba15a6696662335d5b75"
	FraxtalUSDC = "0xDcc0F2D8F90FDe85b10aC1c8Ab57dc0AE946A543"
	LineaUSDC   = "0x176211869cA2b568f2A7D4EE941E073a821EE1ff"
	// http://mantlescan.xyz/token/0x09bc4e0d864854c6afb6eb9a9cdf58ac190d0df9
	MantleUSDC = "0x09Bc4E0D864854c6aFB6eB9A9cdF58aC190D0dF9"
	// https://explorer.mode.network/token/0xd988097fb8612cc24eeC14542bC03424c656005f
	ModeUSDC     = "0xd988097fb8612cc24eeC14542bC03424c656005f"
	OptimismUSDC = "0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85"
	// https://polygonscan.com/token/0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359
	PolygonUSDC = "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359"
	// https://scrollscan.com/token/0x06eFdBFf2a14a7c8E15944D1F4A48F9F95F663A4
	ScrollUSDC = "0x06eFdBFf2a14a7c8E15944D1F4A48F9F95F663A4"
	// https://sonicscan.org/token/0x29219dd400f2Bf60E5a23d13Be72B486D4038894
	SonicUSDC  = "0x29219dd400f2Bf60E5a23d13Be72B486D4038894"
	ZkSyncUSDC = "0x1d17CBcF0D6D143135aE902365D2E5e2A16538D4"
)

// addresses is the compiled-in table.  It is copied into each Directory and
// never written to.
var addresses = map[chain.Named]string{
	chain.Arbitrum:          ArbitrumUSDC,
	chain.ArbitrumSepolia:   ArbitrumSepoliaUSDC,
	chain.Avalanche:         AvalancheUSDC,
	chain.Base:              BaseUSDC,
	chain.BaseSepolia:       BaseSepoliaUSDC,
	chain.BinanceSmartChain: BSCUSDC,
	chain.Fantom:            FantomUSDC,
	chain.Fraxtal:           FraxtalUSDC,
	chain.Sepolia:           EthereumSepoliaUSDC,
	chain.Linea:             LineaUSDC,
	chain.Mainnet:           EthereumUSDC,
	chain.Mantle:            MantleUSDC,
	chain.Mode:              ModeUSDC,
	chain.Optimism:          OptimismUSDC,
	chain.Polygon:           PolygonUSDC,
	chain.Scroll:            ScrollUSDC,
	chain.Sonic:             SonicUSDC,
	chain.ZkSync:            ZkSyncUSDC,
}
