package tour

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Shape 封闭和类型,固定三种形状,外部包不能新增实现
// 通过未导出方法模拟 sealed interface,穷举分派见 ShapeArea
type Shape interface {
	isShape()
}

type Circle struct {
	Radius float64
}

type Rectangle struct {
	Width  float64
	Height float64
}

type Triangle struct {
	Base   float64
	Height float64
}

func (Circle) isShape()    {}
func (Rectangle) isShape() {}
func (Triangle) isShape()  {}

// ShapeArea 穷举分派计算面积: πr², w·h, ½bh
// Shape 是封闭集合,default 分支只会在传入 nil 时走到
func ShapeArea(s Shape) (float64, error) {
	switch v := s.(type) {
	case Circle:
		return math.Pi * v.Radius * v.Radius, nil
	case Rectangle:
		return v.Width * v.Height, nil
	case Triangle:
		return 0.5 * v.Base * v.Height, nil
	default:
		return 0, errors.WithMessagef(ErrUnknownShape, "shape: %T", s)
	}
}

// ShapeAreas 批量计算,保持输入顺序
func ShapeAreas(shapes []Shape) ([]float64, error) {
	areas := make([]float64, 0, len(shapes))
	for _, s := range shapes {
		area, err := ShapeArea(s)
		if err != nil {
			return nil, errors.WithMessagef(err, "ShapeAreas failed, shape: %v", s)
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// DescribeShape 形状的简短文本描述,示例输出用
func DescribeShape(s Shape) string {
	switch v := s.(type) {
	case Circle:
		return fmt.Sprintf("Circle(r=%g)", v.Radius)
	case Rectangle:
		return fmt.Sprintf("Rectangle(%gx%g)", v.Width, v.Height)
	case Triangle:
		return fmt.Sprintf("Triangle(b=%g,h=%g)", v.Base, v.Height)
	default:
		return fmt.Sprintf("Unknown(%T)", s)
	}
}

func FormatArea(area float64) string {
	return fmt.Sprintf("area=%.4f", area)
}
