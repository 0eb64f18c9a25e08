package request

import (
	"context"
	"slices"
)

// DependentsQuerier возвращает запросы, напрямую зависящие от nr
type DependentsQuerier interface {
	Dependents(ctx context.Context, nr int64) ([]int64, error)
}

// DependencySet - неизменяемое множество номеров запросов
type DependencySet struct {
	numbers []int64 // отсортированы по возрастанию
}

// Contains reports whether nr is in the set
func (s DependencySet) Contains(nr int64) bool {
	_, found := slices.BinarySearch(s.numbers, nr)
	return found
}

// Len returns the number of requests in the set
func (s DependencySet) Len() int {
	return len(s.numbers)
}

// Numbers returns a copy of the request numbers in ascending order
func (s DependencySet) Numbers() []int64 {
	return slices.Clone(s.numbers)
}

// DependencyClosure возвращает все запросы, прямо или транзитивно зависящие от nr.
// Каждый вызов строит новое множество; сам nr в него не входит.
func DependencyClosure(ctx context.Context, q DependentsQuerier, nr int64) (DependencySet, error) {
	seen := map[int64]bool{nr: true}
	queue := []int64{nr}
	var numbers []int64

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		dependents, err := q.Dependents(ctx, current)
		if err != nil {
			return DependencySet{}, err
		}
		for _, dep := range dependents {
			if seen[dep] {
				continue
			}
			seen[dep] = true
			numbers = append(numbers, dep)
			queue = append(queue, dep)
		}
	}

	slices.Sort(numbers)
	return DependencySet{numbers: numbers}, nil
}
