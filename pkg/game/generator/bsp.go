package generator

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"darkoffice/pkg/engine/world"
)

// BSPGenerator generates office floors using Binary Space Partitioning
type BSPGenerator struct{}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

// bspRoom is one office inside a BSP leaf
type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) contains(col, row int) bool {
	return col >= r.x && col < r.x+r.width && row >= r.y && row < r.y+r.height
}

func (r *bspRoom) center() (col, row int) {
	return r.x + r.width/2, r.y + r.height/2
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
	maxRows     = 60
	maxCols     = 100
)

// Generate creates an office floor for level (1-based). Every walkable
// cell is reachable from the spawn cell, the first walkable cell in
// row-major order. The goal is the reachable cell farthest from spawn;
// folders and guards go in the other offices.
func (g *BSPGenerator) Generate(level int, rng *rand.Rand) *world.Grid {
	level = max(level, 1)

	// Start small and scale grid size with level (add 2 for perimeter)
	rows := min(14+level*4, maxRows)
	cols := min(26+level*6, maxCols)

	grid := world.NewGrid(cols, rows)
	grid.ForEachCell(func(col, row int, _ world.Cell) {
		grid.Set(col, row, world.Wall)
	})

	// Create BSP tree (leaving 1 cell border for perimeter walls)
	root := &bspNode{x: 1, y: 1, width: cols - 2, height: rows - 2}

	// More splits at higher levels for more rooms
	minSize := max(minNodeSize-level/3, 6)
	splitBSP(rng, root, minSize)
	createRooms(rng, root)
	carveRooms(grid, root)
	connectRooms(rng, grid, root)

	rooms := collectRooms(root)
	spawnCol, spawnRow, _ := grid.FindFirst(world.IsWalkable)
	goalCol, goalRow := findFurthestCell(grid, spawnCol, spawnRow)
	grid.Set(goalCol, goalRow, world.Goal)

	var offices []*bspRoom
	for _, r := range rooms {
		if !r.contains(spawnCol, spawnRow) {
			offices = append(offices, r)
		}
	}
	rng.Shuffle(len(offices), func(i, j int) { offices[i], offices[j] = offices[j], offices[i] })

	folders := placeFolders(grid, offices, 2+level)
	guards := placeGuards(rng, grid, offices, level)

	log.WithFields(log.Fields{
		"level":   level,
		"cols":    cols,
		"rows":    rows,
		"rooms":   len(rooms),
		"folders": folders,
		"guards":  guards,
	}).Debug("office floor generated")
	return grid
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return // Too small to split
	}

	// Decide split direction
	var splitHorizontal bool
	switch {
	case node.width > node.height && node.width >= minSize*2:
		splitHorizontal = false
	case node.height > node.width && node.height >= minSize*2:
		splitHorizontal = true
	case node.width >= minSize*2 && node.height >= minSize*2:
		splitHorizontal = rng.Intn(2) == 0
	case node.width >= minSize*2:
		splitHorizontal = false
	default:
		splitHorizontal = true
	}

	if splitHorizontal {
		// Split horizontally (top and bottom)
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		// Split vertically (left and right)
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// createRooms creates rooms in leaf nodes
func createRooms(rng *rand.Rand, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(rng, node.left)
		}
		if node.right != nil {
			createRooms(rng, node.right)
		}
		return
	}

	roomWidth := min(minRoomSize+rng.Intn(node.width-minRoomSize-roomPadding+1), node.width-roomPadding)
	roomHeight := min(minRoomSize+rng.Intn(node.height-minRoomSize-roomPadding+1), node.height-roomPadding)

	node.room = &bspRoom{
		x:      node.x + rng.Intn(node.width-roomWidth),
		y:      node.y + rng.Intn(node.height-roomHeight),
		width:  roomWidth,
		height: roomHeight,
	}
}

// carveRooms clears room cells to floor
func carveRooms(grid *world.Grid, node *bspNode) {
	if node.room != nil {
		for row := node.room.y; row < node.room.y+node.room.height; row++ {
			for col := node.room.x; col < node.room.x+node.room.width; col++ {
				grid.Set(col, row, world.Floor)
			}
		}
	}
	if node.left != nil {
		carveRooms(grid, node.left)
	}
	if node.right != nil {
		carveRooms(grid, node.right)
	}
}

// connectRooms joins one room from each subtree with an L-shaped corridor
func connectRooms(rng *rand.Rand, grid *world.Grid, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(rng, node.left)
	rightRoom := getRoom(rng, node.right)

	if leftRoom != nil && rightRoom != nil {
		lc, lr := leftRoom.center()
		rc, rr := rightRoom.center()
		if rng.Intn(2) == 0 {
			// Horizontal first, then vertical
			carveCorridorHorizontal(grid, lr, lc, rc)
			carveCorridorVertical(grid, rc, lr, rr)
		} else {
			// Vertical first, then horizontal
			carveCorridorVertical(grid, lc, lr, rr)
			carveCorridorHorizontal(grid, rr, lc, rc)
		}
	}

	connectRooms(rng, grid, node.left)
	connectRooms(rng, grid, node.right)
}

func carveCorridorHorizontal(grid *world.Grid, row, startCol, endCol int) {
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	for col := startCol; col <= endCol; col++ {
		grid.Set(col, row, world.Floor)
	}
}

func carveCorridorVertical(grid *world.Grid, col, startRow, endRow int) {
	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	for row := startRow; row <= endRow; row++ {
		grid.Set(col, row, world.Floor)
	}
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(rng *rand.Rand, node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *bspRoom
	if node.left != nil {
		leftRoom = getRoom(rng, node.left)
	}
	if node.right != nil {
		rightRoom = getRoom(rng, node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree
func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom
	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}
	return rooms
}

// placeFolders drops a folder at the centre of up to n offices and
// returns how many it placed.
func placeFolders(grid *world.Grid, offices []*bspRoom, n int) int {
	placed := 0
	for _, r := range offices {
		if placed == n {
			break
		}
		col, row := r.center()
		if grid.At(col, row) == world.Floor {
			grid.Set(col, row, world.Folder)
			placed++
		}
	}
	return placed
}

// placeGuards puts level guards on free floor cells of the offices,
// cycling through them. Fast guards appear from level 2 on, one in two.
func placeGuards(rng *rand.Rand, grid *world.Grid, offices []*bspRoom, level int) int {
	if len(offices) == 0 {
		return 0
	}
	placed := 0
	for i := 0; i < level; i++ {
		r := offices[i%len(offices)]
		col := r.x + rng.Intn(r.width)
		row := r.y + rng.Intn(r.height)
		if grid.At(col, row) != world.Floor {
			continue
		}
		kind := world.Guard1
		if level >= 2 && i%2 == 1 {
			kind = world.Guard2
		}
		grid.Set(col, row, kind)
		placed++
	}
	return placed
}

// findFurthestCell returns the walkable cell with the longest 4-neighbour
// path from (col, row). Ties keep the first found in breadth-first order.
func findFurthestCell(grid *world.Grid, col, row int) (int, int) {
	dist := make([]int, grid.Cols()*grid.Rows())
	for i := range dist {
		dist[i] = -1
	}
	index := func(c, r int) int { return r*grid.Cols() + c }

	type cell struct{ col, row int }
	queue := []cell{{col, row}}
	dist[index(col, row)] = 0
	best := queue[0]

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if dist[index(cur.col, cur.row)] > dist[index(best.col, best.row)] {
			best = cur
		}
		for _, d := range world.JiggleOrder() {
			delta := d.Delta()
			nc, nr := cur.col+int(delta.X), cur.row+int(delta.Y)
			if !grid.InBounds(nc, nr) || world.IsBlocking(grid.At(nc, nr)) || dist[index(nc, nr)] >= 0 {
				continue
			}
			dist[index(nc, nr)] = dist[index(cur.col, cur.row)] + 1
			queue = append(queue, cell{nc, nr})
		}
	}
	return best.col, best.row
}
