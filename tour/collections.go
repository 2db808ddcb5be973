package tour

import (
	"slices"

	"github.com/pkg/errors"
)

// 不可变集合: ListOf/SetOf/MapOf 构造后冻结
// 读操作正常工作,写操作一律返回 ErrUnsupportedMutation,绝不静默成功

type ImmutableList[T comparable] struct {
	items []T
}

func ListOf[T comparable](items ...T) *ImmutableList[T] {
	// 拷贝一份,切断和调用方切片的联系
	return &ImmutableList[T]{items: slices.Clone(items)}
}

func (l *ImmutableList[T]) Len() int {
	return len(l.items)
}

func (l *ImmutableList[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

func (l *ImmutableList[T]) Contains(value T) bool {
	return slices.Contains(l.items, value)
}

// Values 返回内容拷贝,调用方改不到内部状态
func (l *ImmutableList[T]) Values() []T {
	return slices.Clone(l.items)
}

func (l *ImmutableList[T]) Append(value T) error {
	return errors.WithMessagef(ErrUnsupportedMutation, "ImmutableList.Append, value: %v", value)
}

func (l *ImmutableList[T]) Remove(index int) error {
	return errors.WithMessagef(ErrUnsupportedMutation, "ImmutableList.Remove, index: %d", index)
}

type ImmutableSet[T comparable] struct {
	items map[T]struct{}
}

func SetOf[T comparable](items ...T) *ImmutableSet[T] {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return &ImmutableSet[T]{items: set}
}

func (s *ImmutableSet[T]) Len() int {
	return len(s.items)
}

func (s *ImmutableSet[T]) Contains(value T) bool {
	_, ok := s.items[value]
	return ok
}

// Values 返回内容拷贝,顺序不保证
func (s *ImmutableSet[T]) Values() []T {
	ret := make([]T, 0, len(s.items))
	for item := range s.items {
		ret = append(ret, item)
	}
	return ret
}

func (s *ImmutableSet[T]) Add(value T) error {
	return errors.WithMessagef(ErrUnsupportedMutation, "ImmutableSet.Add, value: %v", value)
}

func (s *ImmutableSet[T]) Remove(value T) error {
	return errors.WithMessagef(ErrUnsupportedMutation, "ImmutableSet.Remove, value: %v", value)
}

type ImmutableMap[K comparable, V any] struct {
	items map[K]V
}

func MapOf[K comparable, V any](items map[K]V) *ImmutableMap[K, V] {
	set := make(map[K]V, len(items))
	for k, v := range items {
		set[k] = v
	}
	return &ImmutableMap[K, V]{items: set}
}

func (m *ImmutableMap[K, V]) Len() int {
	return len(m.items)
}

func (m *ImmutableMap[K, V]) Get(key K) (V, bool) {
	value, ok := m.items[key]
	return value, ok
}

func (m *ImmutableMap[K, V]) Keys() []K {
	ret := make([]K, 0, len(m.items))
	for k := range m.items {
		ret = append(ret, k)
	}
	return ret
}

func (m *ImmutableMap[K, V]) Put(key K, value V) error {
	return errors.WithMessagef(ErrUnsupportedMutation, "ImmutableMap.Put, key: %v", key)
}

func (m *ImmutableMap[K, V]) Delete(key K) error {
	return errors.WithMessagef(ErrUnsupportedMutation, "ImmutableMap.Delete, key: %v", key)
}
