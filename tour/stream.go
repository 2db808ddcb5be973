package tour

import (
	"cmp"
	"slices"
	"strings"
)

// 泛型切片工具,对应流式处理的常用算子
// 所有函数都返回新切片,不修改输入

func Filter[T any](items []T, keep func(T) bool) []T {
	ret := make([]T, 0)
	for _, item := range items {
		if keep(item) {
			ret = append(ret, item)
		}
	}
	return ret
}

func MapSlice[T any, U any](items []T, transform func(T) U) []U {
	ret := make([]U, 0, len(items))
	for _, item := range items {
		ret = append(ret, transform(item))
	}
	return ret
}

// FlatMap 一对多展开,对应 mapMulti 风格的算子
func FlatMap[T any, U any](items []T, expand func(T) []U) []U {
	ret := make([]U, 0)
	for _, item := range items {
		ret = append(ret, expand(item)...)
	}
	return ret
}

func Distinct[T comparable](items []T) []T {
	ret := make([]T, 0)
	seen := make(map[T]struct{})
	for _, item := range items {
		if _, ok := seen[item]; !ok {
			ret = append(ret, item)
			seen[item] = struct{}{}
		}
	}
	return ret
}

func Sorted[T cmp.Ordered](items []T) []T {
	ret := slices.Clone(items)
	slices.Sort(ret)
	return ret
}

// TakeWhile 从头取元素直到谓词第一次不满足
func TakeWhile[T any](items []T, keep func(T) bool) []T {
	ret := make([]T, 0)
	for _, item := range items {
		if !keep(item) {
			break
		}
		ret = append(ret, item)
	}
	return ret
}

// DropWhile 从头丢弃元素直到谓词第一次不满足,保留其余全部
func DropWhile[T any](items []T, drop func(T) bool) []T {
	for i, item := range items {
		if !drop(item) {
			return slices.Clone(items[i:])
		}
	}
	return make([]T, 0)
}

// FindFirst 返回第一个满足谓词的元素
func FindFirst[T any](items []T, match func(T) bool) Optional[T] {
	for _, item := range items {
		if match(item) {
			return Of(item)
		}
	}
	return Empty[T]()
}

// RangeInts 生成 [from, to) 的整数切片
func RangeInts(from, to int) []int {
	ret := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		ret = append(ret, i)
	}
	return ret
}

// LongWords 提取长度大于3的单词,转小写去重排序
// 文本按空白切分
func LongWords(lines []string) []string {
	words := FlatMap(lines, func(line string) []string {
		ret := make([]string, 0)
		for _, word := range strings.Fields(line) {
			if len(word) > 3 {
				ret = append(ret, strings.ToLower(word))
			}
		}
		return ret
	})
	return Sorted(Distinct(words))
}
