package calldata

import (
	"encoding/hex"
	"slices"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// commonSignatures are the functions DefaultSelectorBook knows about.
var commonSignatures = []string{
	"approve(address,uint256)",
	"balanceOf(address)",
	"transfer(address,uint256)",
	"transferFrom(address,address,uint256)",
	"deposit()",
	"withdraw(uint256)",
	"multicall(bytes[])",
	"multicall(uint256,bytes[])",
	"multicall(bytes32,bytes[])",
	"aggregate((address,bytes)[])",
	"tryAggregate(bool,(address,bytes)[])",
	"aggregate3((address,bool,bytes)[])",
	"execute(bytes,bytes[])",
	"execute(bytes,bytes[],uint256)",
	"refundETH()",
	"unwrapWETH9(uint256,address)",
	"sweepToken(address,uint256,address)",
	"selfPermit(address,uint256,uint256,uint8,bytes32,bytes32)",
	"exactInput((bytes,address,uint256,uint256,uint256))",
	"exactInputSingle((address,address,uint24,address,uint256,uint256,uint256,uint160))",
	"swapExactTokensForTokens(uint256,uint256,address[],address,uint256)",
	"mint((address,address,uint24,int24,int24,uint256,uint256,uint256,uint256,address,uint256))",
	"increaseLiquidity((uint256,uint256,uint256,uint256,uint256,uint256))",
	"collect((uint256,address,uint128,uint128))",
}

// SelectorBook maps 4-byte selectors to the function signatures that hash
// to them. It is only used to label decoded calls; decoding never needs it.
// A SelectorBook is safe for concurrent use.
type SelectorBook struct {
	mu         sync.RWMutex
	signatures map[string][]string
}

// NewSelectorBook creates an empty SelectorBook.
func NewSelectorBook() *SelectorBook {
	return &SelectorBook{signatures: make(map[string][]string)}
}

// DefaultSelectorBook creates a SelectorBook holding common token, router
// and multicall signatures.
func DefaultSelectorBook() *SelectorBook {
	book := NewSelectorBook()
	for _, sig := range commonSignatures {
		book.MustAddSignature(sig)
	}
	return book
}

// SelectorOf returns the selector of a canonical signature as 8 hex digits.
func SelectorOf(signature string) string {
	return hex.EncodeToString(crypto.Keccak256([]byte(signature))[:4])
}

// AddSignature registers a canonical signature such as
// "transfer(address,uint256)" and returns its selector.
func (b *SelectorBook) AddSignature(signature string) (string, error) {
	signature = strings.ReplaceAll(strings.TrimSpace(signature), " ", "")
	open := strings.IndexByte(signature, '(')
	switch {
	case open <= 0:
		return "", &SignatureError{Signature: signature, Reason: "missing function name"}
	case !strings.HasSuffix(signature, ")"):
		return "", &SignatureError{Signature: signature, Reason: "missing closing parenthesis"}
	}

	selector := SelectorOf(signature)
	b.add(selector, signature)
	return selector, nil
}

// MustAddSignature is like AddSignature but panics on error.
func (b *SelectorBook) MustAddSignature(signature string) string {
	selector, err := b.AddSignature(signature)
	if err != nil {
		panic(err)
	}
	return selector
}

// AddABI registers every method of a parsed ABI and returns how many were added.
func (b *SelectorBook) AddABI(parsed abi.ABI) int {
	for _, method := range parsed.Methods {
		b.add(hex.EncodeToString(method.ID[:4]), method.Sig)
	}
	return len(parsed.Methods)
}

func (b *SelectorBook) add(selector, signature string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if slices.Contains(b.signatures[selector], signature) {
		return
	}
	b.signatures[selector] = append(b.signatures[selector], signature)
}

// Lookup returns the signatures registered for selector, in insertion order.
// The selector may carry a 0x prefix and any letter case.
func (b *SelectorBook) Lookup(selector string) ([]string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sigs, ok := b.signatures[NormalizeHex(selector)]
	if !ok {
		return nil, false
	}
	return slices.Clone(sigs), true
}

// Label returns the first signature registered for selector, or "" if none is.
func (b *SelectorBook) Label(selector string) string {
	sigs, ok := b.Lookup(selector)
	if !ok {
		return ""
	}
	return sigs[0]
}

// Len returns the number of distinct selectors in the book.
func (b *SelectorBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.signatures)
}

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}
