// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

type IDGenerator interface {
	// Generate biz 区分不同的业务，每个业务有自己的节点
	Generate(biz Biz) (int64, error)
}

type Biz uint

const (
	BizApplication Biz = iota
	BizJob
	bizCount
)

const maxNode int64 = 31

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrUnknownBiz = errors.New("未知的业务")
)

// +-----------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit Biz | 5 Bit NodeID  |   12 Bit Sequence ID |
// +-----------------------------------------------------------------------------------+

type Generator struct {
	nodes syncx.Map[Biz, *snowflake.Node]
}

// NewGenerator nodeID 是部署实例的编号，从 0 开始，最多到 31
func NewGenerator(nodeID int64) (*Generator, error) {
	if nodeID < 0 || nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	g := &Generator{}
	for b := Biz(0); b < bizCount; b++ {
		n, err := snowflake.NewNode(int64(b)<<5 | nodeID)
		if err != nil {
			return nil, err
		}
		g.nodes.Store(b, n)
	}
	return g, nil
}

func (g *Generator) Generate(biz Biz) (int64, error) {
	n, ok := g.nodes.Load(biz)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBiz, biz)
	}
	return n.Generate().Int64(), nil
}

// BizOf 从 id 中解析出业务
func BizOf(id int64) Biz {
	return Biz(snowflake.ID(id).Node() >> 5)
}
