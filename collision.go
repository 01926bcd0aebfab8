package asteroids

import (
	"github.com/oliverbestmann/byke/physics"
)

// Collision categories. Bullets and the ship only ever hit asteroids;
// asteroids pass through each other.
const (
	categoryShip uint = 1 << iota
	categoryBullet
	categoryAsteroid
)

func shipShapeFilter() physics.ShapeFilter {
	return physics.ShapeFilter{
		Categories: categoryShip,
		Mask:       categoryAsteroid,
	}
}

func bulletShapeFilter() physics.ShapeFilter {
	return physics.ShapeFilter{
		Categories: categoryBullet,
		Mask:       categoryAsteroid,
	}
}

func asteroidShapeFilter() physics.ShapeFilter {
	return physics.ShapeFilter{
		Categories: categoryAsteroid,
		Mask:       categoryShip | categoryBullet,
	}
}
