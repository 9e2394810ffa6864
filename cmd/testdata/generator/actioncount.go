package generator

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
)

// ActionCountGenerator generates user action logs in format: "{user_id} did {action}"
type ActionCountGenerator struct {
	UserCount int
	rand      *rand.Rand
	userIDs   []string
}

var actions = []string{
	"login",
	"logout",
	"viewed product",
	"added to cart",
	"removed from cart",
	"purchased",
	"reviewed product",
	"updated profile",
	"changed password",
	"subscribed to newsletter",
}

func (g *ActionCountGenerator) Init(r *rand.Rand) {
	g.rand = r

	if g.UserCount <= 0 {
		g.UserCount = 100
	}
	g.userIDs = make([]string, g.UserCount)
	for i := range g.userIDs {
		g.userIDs[i] = "user_" + strconv.Itoa(i)
	}
}

func (g *ActionCountGenerator) WriteLine(w io.Writer) error {
	user := g.userIDs[g.rand.IntN(len(g.userIDs))]
	action := actions[g.rand.IntN(len(actions))]

	_, err := fmt.Fprintf(w, "%s did %s\n", user, action)
	return err
}

func (g *ActionCountGenerator) Description() string {
	return "User action logs: {user_id} did {action}"
}

func (g *ActionCountGenerator) DefaultCount() int64 {
	return 1e4 // 10,000 lines
}
