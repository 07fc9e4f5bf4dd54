package model

import (
	"fmt"
	"math/rand"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
)

// Wallet 模拟钱包，归属于单个用户
type Wallet struct {
	Address     string         `json:"address"`
	IsConnected bool           `json:"isConnected"`
	Network     string         `json:"network"`
	Tokens      []TokenBalance `json:"tokens"`
	NFTs        []NFT          `json:"nfts,omitempty"`
}

// TokenBalance 钱包中的单个代币条目
type TokenBalance struct {
	Symbol          string          `json:"symbol"`
	Name            string          `json:"name"`
	Balance         decimal.Decimal `json:"balance"`
	Decimals        int             `json:"decimals"`
	USDValue        decimal.Decimal `json:"usdValue"`
	ContractAddress string          `json:"contractAddress"`
}

// NFT 占位 NFT 条目
type NFT struct {
	Id         string `json:"id"`
	Name       string `json:"name"`
	Collection string `json:"collection"`
	Image      string `json:"image"`
	Rarity     string `json:"rarity"`
}

// 快照中金额落盘为 JSON 数字而非带引号字符串
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// 代币单价（美元）
var (
	SwarmTokenPrice = decimal.RequireFromString("0.85")
	ethTokenPrice   = decimal.NewFromInt(2400)
	usdcTokenPrice  = decimal.NewFromInt(1)
)

// Clone 深拷贝钱包，代币与 NFT 切片均独立
func (w *Wallet) Clone() *Wallet {
	if w == nil {
		return nil
	}
	cloned := *w
	cloned.Tokens = append([]TokenBalance(nil), w.Tokens...)
	cloned.NFTs = append([]NFT(nil), w.NFTs...)
	return &cloned
}

// SwarmToken 返回钱包中 SWARM 代币条目，不存在时返回 nil
func (w *Wallet) SwarmToken() *TokenBalance {
	for i := range w.Tokens {
		if w.Tokens[i].Symbol == SwarmTokenSymbol {
			return &w.Tokens[i]
		}
	}
	return nil
}

// NewPlaceholderWallet 生成占位钱包，非 SWARM 代币余额随机
func NewPlaceholderWallet(address string, swarmTokens int64) *Wallet {
	ethBalance := decimal.NewFromFloat(rand.Float64()*5 + 0.1)
	usdcBalance := decimal.NewFromFloat(rand.Float64()*1000 + 100)
	swarmBalance := decimal.NewFromInt(swarmTokens)

	return &Wallet{
		Address:     address,
		IsConnected: true,
		Network:     "ethereum",
		Tokens: []TokenBalance{
			{
				Symbol:          "ETH",
				Name:            "Ethereum",
				Balance:         ethBalance,
				Decimals:        18,
				USDValue:        ethBalance.Mul(ethTokenPrice),
				ContractAddress: "0x0000000000000000000000000000000000000000",
			},
			{
				Symbol:          "USDC",
				Name:            "USD Coin",
				Balance:         usdcBalance,
				Decimals:        6,
				USDValue:        usdcBalance.Mul(usdcTokenPrice),
				ContractAddress: "0xA0b86a33E6441c8C4C4C4C4C4C4C4C4C4C4C4C4C",
			},
			{
				Symbol:          SwarmTokenSymbol,
				Name:            "SWARM Token",
				Balance:         swarmBalance,
				Decimals:        18,
				USDValue:        swarmBalance.Mul(SwarmTokenPrice),
				ContractAddress: "0xSWARM1234567890abcdef1234567890abcdef12",
			},
		},
		NFTs: []NFT{
			{
				Id:         "nft-1",
				Name:       "AI Agent #1337",
				Collection: "Swarm Agents",
				Image:      "https://images.pexels.com/photos/8566473/pexels-photo-8566473.jpeg?auto=compress&cs=tinysrgb&w=400",
				Rarity:     "Rare",
			},
			{
				Id:         "nft-2",
				Name:       "Neural Network #42",
				Collection: "Digital Minds",
				Image:      "https://images.pexels.com/photos/8386440/pexels-photo-8386440.jpeg?auto=compress&cs=tinysrgb&w=400",
				Rarity:     "Epic",
			},
		},
	}
}

// MintWalletAddress 生成占位钱包地址，私钥即弃，不做任何链上交互
func MintWalletAddress() string {
	key, err := crypto.GenerateKey()
	if err != nil {
		// 密钥生成失败时退化为纯随机地址
		buf := make([]byte, 20)
		rand.Read(buf)
		return fmt.Sprintf("0x%x", buf)
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}
