package tour

import "fmt"

// 本文件是 record 风格元组的集合: 只有结构相等性,没有标识,没有可变状态
// 每个测试按需创建,用完即丢

type Point struct {
	X int
	Y int
}

// CenteredCircle 嵌套元组,演示多层解构
type CenteredCircle struct {
	Center Point
	Radius int
}

// DescribeCenteredCircle 嵌套解构示例
// CenteredCircle{Point{10,20},5} -> "Circle at (10,20) with radius 5"
func DescribeCenteredCircle(c CenteredCircle) string {
	x, y, r := c.Center.X, c.Center.Y, c.Radius
	return fmt.Sprintf("Circle at (%d,%d) with radius %d", x, y, r)
}

type Department struct {
	Name     string
	Location string
}

type Employee struct {
	Name       string
	ID         int
	Department Department
}

type Request struct {
	Type string
	ID   int
}

type Response struct {
	Result  string
	Success bool
}

// FileLine 文件行元组,文件处理示例用
type FileLine struct {
	Number  int
	Content string
}
