package util

type Equaler interface {
	Equal(Equaler) bool
}

// Keyer is implemented by values that can stand in for a hash key; two
// values with equal keys land in the same map bucket even when Equal
// tells them apart.
type Keyer interface {
	Key() string
}
