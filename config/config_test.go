package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spectra-cli/spectra/filesystem"
	"github.com/spectra-cli/spectra/key"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should register the declared number of fields", func() {
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("gradient.hues")
			So(result, ShouldEqual, "gradient_hues")
		})

		Convey("Env should prefix the application name", func() {
			f := Default[key.GradientHues]
			So(f.Env(), ShouldEqual, "SPECTRA_GRADIENT_HUES")
		})
	})
}
