package custom

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spectra-cli/spectra/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func write(path, script string) {
	_ = filesystem.API().WriteFile(path, []byte(script), 0644)
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("Should load a valid palette script", func() {
			write("/palettes/dusk.lua", `
function Colors()
	return { "#5f00ff", "#ff00ff", "orange" }
end
`)
			name, colors, err := Load("/palettes/dusk.lua")
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "dusk")
			So(colors, ShouldHaveLength, 3)
			So(colors[2].Name(), ShouldEqual, "orange")
		})

		Convey("Should reject a script without the Colors function", func() {
			write("/palettes/empty.lua", `local x = 1`)
			_, _, err := Load("/palettes/empty.lua")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Colors")
		})

		Convey("Should reject unparseable color tokens", func() {
			write("/palettes/bad.lua", `
function Colors()
	return { "#ff0000", "blurple" }
end
`)
			_, _, err := Load("/palettes/bad.lua")
			So(err, ShouldNotBeNil)
		})

		Convey("Should reject palettes with fewer than two colors", func() {
			write("/palettes/single.lua", `
function Colors()
	return { "#ff0000" }
end
`)
			_, _, err := Load("/palettes/single.lua")
			So(err, ShouldNotBeNil)
		})

		Convey("Should surface Lua runtime errors", func() {
			write("/palettes/broken.lua", `this is not lua`)
			_, _, err := Load("/palettes/broken.lua")
			So(err, ShouldNotBeNil)
		})
	})
}
