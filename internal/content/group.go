package content

// Group partitions items by key and sorts every bucket. Buckets only exist
// for keys that have at least one member.
func Group[T Item, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	for k := range groups {
		Sort(groups[k])
	}
	return groups
}
