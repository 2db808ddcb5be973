package tour

// Optional 可能缺失的值,零值表示空
type Optional[T any] struct {
	value   T
	present bool
}

func Of[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get 返回值和是否存在,不存在时返回零值
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Or 不存在时用 supplier 兜底
func (o Optional[T]) Or(supplier func() Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return supplier()
}

// CollectPresent 收集所有存在的值,保持输入顺序
func CollectPresent[T any](optionals []Optional[T]) []T {
	ret := make([]T, 0, len(optionals))
	for _, o := range optionals {
		if value, ok := o.Get(); ok {
			ret = append(ret, value)
		}
	}
	return ret
}
