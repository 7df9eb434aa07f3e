package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY = "https://ipfs.io"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// Marketplace limits
	MAX_SECURE_FILE_BYTES = 50 << 20 // 50 MiB upload ceiling
	MAX_ROYALTY_BPS       = 5000     // creators keep royalties at or below 50%
)
