package quad

// IsPowerOfTwo reports whether n is 2^k for some k >= 0.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// TexturePolicy selects the sampling setup of the texture.
type TexturePolicy int

const (
	// PolicyMipmap keeps the default wrap and filter state and generates
	// a full mipmap chain.
	PolicyMipmap TexturePolicy = iota

	// PolicyClamp sets CLAMP_TO_EDGE wrapping and LINEAR filtering and
	// never generates mipmaps. Required for non power of two images.
	PolicyClamp
)

func (p TexturePolicy) String() string {
	switch p {
	case PolicyMipmap:
		return "mipmap"
	case PolicyClamp:
		return "clamp-to-edge/linear"
	}
	return "unknown"
}

// TexturePolicyFor returns the policy for an image of the given size.
func TexturePolicyFor(width, height int) TexturePolicy {
	if IsPowerOfTwo(width) && IsPowerOfTwo(height) {
		return PolicyMipmap
	}
	return PolicyClamp
}
