package testutil

// DemoHCL mirrors the demo application's module build: three build types
// (debugMinified initialised from debug), a strict lint block and the
// module's dependency set.
const DemoHCL = `
project {
  namespace      = "com.beco.demo"
  application_id = "com.beco.demo"
  compile_sdk    = 34
  min_sdk        = 26
  target_sdk     = 34
  version_code   = 1
  version_name   = "1.0"

  test_instrumentation_runner = "androidx.test.runner.AndroidJUnitRunner"

  build_features = {
    view_binding = true
  }

  compile_options {
    source_compatibility = "1.8"
    target_compatibility = "1.8"
    jvm_target           = "1.8"
  }
}

plugin "com.android.application" {
  version = "8.2.2"
}

plugin "org.jetbrains.kotlin.android" {
  version = "1.9.22"
}

variant "debug" {
  minify_enabled = false
  debuggable     = true
}

variant "release" {
  minify_enabled   = true
  shrink_resources = true
  debuggable       = false
  proguard_files   = [default_proguard_file("proguard-android-optimize.txt"), "proguard-rules.pro"]
}

variant "debugMinified" {
  init_with          = "debug"
  minify_enabled     = true
  shrink_resources   = true
  debuggable         = true
  proguard_files     = [default_proguard_file("proguard-android-optimize.txt"), "proguard-rules.pro"]
  matching_fallbacks = ["debug"]
}

dependencies {
  implementation = [
    "androidx.core:core-ktx:1.12.0",
    "androidx.appcompat:appcompat:1.7.1",
    "com.google.android.material:material:1.12.0",
    "androidx.constraintlayout:constraintlayout:2.2.1",
    "com.becomap.sdk:becomap:2.0.3",
  ]
  test_implementation = ["junit:junit:4.13.2"]
  android_test_implementation = [
    "androidx.test.ext:junit:1.2.1",
    "androidx.test.espresso:espresso-core:3.6.1",
  ]
}

lint {
  abort_on_error       = true
  warnings_as_errors   = false
  check_release_builds = true
  check_dependencies   = true
  explain_issues       = true
  absolute_paths       = false

  enable  = ["UnusedResources", "GradleDependency", "NewerVersionAvailable", "StopShip", "HardcodedText"]
  disable = ["GoogleAppIndexingWarning", "HardcodedDebugMode", "AllowBackup"]

  error         = ["StopShip", "ShrinkWithoutMinify"]
  warning       = ["HardcodedText", "UnusedResources"]
  informational = ["ContentDescription"]

  html_report  = true
  xml_report   = true
  text_report  = false
  sarif_report = true

  html_output  = "${build_dir}/reports/lint/lint-results.html"
  xml_output   = "${build_dir}/reports/lint/lint-results.xml"
  sarif_output = "${build_dir}/reports/lint/lint-results.sarif"
}
`
