package util

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

type Triple[A, B comparable, C any] struct {
	First  A
	Second B
	Third  C
}

// Merge returns a new map holding every key of existing and incoming.
// Keys present in both are combined as combine(existing[k], incoming[k]);
// neither input is modified.
func Merge[K comparable, V any](existing, incoming map[K]V, combine func(V, V) V) map[K]V {
	retval := make(map[K]V, len(existing)+len(incoming))
	for k, v := range existing {
		retval[k] = v
	}
	for k, v := range incoming {
		if cur, exists := retval[k]; exists {
			retval[k] = combine(cur, v)
		} else {
			retval[k] = v
		}
	}
	return retval
}

// Accumulate folds an ordered list of pairs into a map, combining the values
// of repeated keys left to right.
func Accumulate[K comparable, V any](combine func(V, V) V, pairs []Pair[K, V]) map[K]V {
	retval := make(map[K]V, len(pairs))
	for _, p := range pairs {
		if cur, exists := retval[p.Key]; exists {
			retval[p.Key] = combine(cur, p.Value)
		} else {
			retval[p.Key] = p.Value
		}
	}
	return retval
}

// DictOfDicts nests triples as m[First][Second] = Third; later triples
// overwrite earlier ones with the same First and Second.
func DictOfDicts[A, B comparable, C any](triples []Triple[A, B, C]) map[A]map[B]C {
	retval := make(map[A]map[B]C)
	for _, t := range triples {
		inner, exists := retval[t.First]
		if !exists {
			inner = make(map[B]C)
			retval[t.First] = inner
		}
		inner[t.Second] = t.Third
	}
	return retval
}
