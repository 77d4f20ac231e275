package java

// jdkSuperclasses maps JDK throwables (and java.lang.Object) to their
// direct superclass. Only types that show up in course code are listed;
// anything else resolves through the sources or falls back to names.
var jdkSuperclasses = map[string]string{
	"java.lang.Object":    "",
	"java.lang.Throwable": "java.lang.Object",
	"java.lang.Exception": "java.lang.Throwable",
	"java.lang.Error":     "java.lang.Throwable",

	"java.lang.RuntimeException":                "java.lang.Exception",
	"java.lang.ArithmeticException":             "java.lang.RuntimeException",
	"java.lang.ArrayIndexOutOfBoundsException":  "java.lang.IndexOutOfBoundsException",
	"java.lang.ArrayStoreException":             "java.lang.RuntimeException",
	"java.lang.ClassCastException":              "java.lang.RuntimeException",
	"java.lang.ClassNotFoundException":          "java.lang.ReflectiveOperationException",
	"java.lang.CloneNotSupportedException":      "java.lang.Exception",
	"java.lang.EnumConstantNotPresentException": "java.lang.RuntimeException",
	"java.lang.IllegalAccessException":          "java.lang.ReflectiveOperationException",
	"java.lang.IllegalArgumentException":        "java.lang.RuntimeException",
	"java.lang.IllegalCallerException":          "java.lang.RuntimeException",
	"java.lang.IllegalMonitorStateException":    "java.lang.RuntimeException",
	"java.lang.IllegalStateException":           "java.lang.RuntimeException",
	"java.lang.IllegalThreadStateException":     "java.lang.IllegalArgumentException",
	"java.lang.IndexOutOfBoundsException":       "java.lang.RuntimeException",
	"java.lang.InstantiationException":          "java.lang.ReflectiveOperationException",
	"java.lang.InterruptedException":            "java.lang.Exception",
	"java.lang.NegativeArraySizeException":      "java.lang.RuntimeException",
	"java.lang.NoSuchFieldException":            "java.lang.ReflectiveOperationException",
	"java.lang.NoSuchMethodException":           "java.lang.ReflectiveOperationException",
	"java.lang.NullPointerException":            "java.lang.RuntimeException",
	"java.lang.NumberFormatException":           "java.lang.IllegalArgumentException",
	"java.lang.ReflectiveOperationException":    "java.lang.Exception",
	"java.lang.SecurityException":               "java.lang.RuntimeException",
	"java.lang.StringIndexOutOfBoundsException": "java.lang.IndexOutOfBoundsException",
	"java.lang.TypeNotPresentException":         "java.lang.RuntimeException",
	"java.lang.UnsupportedOperationException":   "java.lang.RuntimeException",

	"java.lang.reflect.InvocationTargetException": "java.lang.ReflectiveOperationException",

	"java.lang.AssertionError":              "java.lang.Error",
	"java.lang.LinkageError":                "java.lang.Error",
	"java.lang.NoClassDefFoundError":        "java.lang.LinkageError",
	"java.lang.ExceptionInInitializerError": "java.lang.LinkageError",
	"java.lang.VirtualMachineError":         "java.lang.Error",
	"java.lang.OutOfMemoryError":            "java.lang.VirtualMachineError",
	"java.lang.StackOverflowError":          "java.lang.VirtualMachineError",
	"java.lang.InternalError":               "java.lang.VirtualMachineError",

	"java.io.IOException":                  "java.lang.Exception",
	"java.io.CharConversionException":      "java.io.IOException",
	"java.io.EOFException":                 "java.io.IOException",
	"java.io.FileNotFoundException":        "java.io.IOException",
	"java.io.InterruptedIOException":       "java.io.IOException",
	"java.io.ObjectStreamException":        "java.io.IOException",
	"java.io.InvalidClassException":        "java.io.ObjectStreamException",
	"java.io.NotSerializableException":     "java.io.ObjectStreamException",
	"java.io.UnsupportedEncodingException": "java.io.IOException",
	"java.io.UTFDataFormatException":       "java.io.IOException",
	"java.io.UncheckedIOException":         "java.lang.RuntimeException",
	"java.io.IOError":                      "java.lang.Error",

	"java.util.NoSuchElementException":          "java.lang.RuntimeException",
	"java.util.InputMismatchException":          "java.util.NoSuchElementException",
	"java.util.ConcurrentModificationException": "java.lang.RuntimeException",
	"java.util.EmptyStackException":             "java.lang.RuntimeException",
	"java.util.MissingResourceException":        "java.lang.RuntimeException",
	"java.util.IllegalFormatException":          "java.lang.IllegalArgumentException",

	"java.util.concurrent.BrokenBarrierException":     "java.lang.Exception",
	"java.util.concurrent.CancellationException":      "java.lang.IllegalStateException",
	"java.util.concurrent.CompletionException":        "java.lang.RuntimeException",
	"java.util.concurrent.ExecutionException":         "java.lang.Exception",
	"java.util.concurrent.RejectedExecutionException": "java.lang.RuntimeException",
	"java.util.concurrent.TimeoutException":           "java.lang.Exception",
	"java.util.zip.DataFormatException":               "java.lang.Exception",
	"java.util.zip.ZipException":                      "java.io.IOException",

	"java.nio.BufferOverflowException":          "java.lang.RuntimeException",
	"java.nio.BufferUnderflowException":         "java.lang.RuntimeException",
	"java.nio.charset.CharacterCodingException": "java.io.IOException",
	"java.nio.file.FileSystemException":         "java.io.IOException",
	"java.nio.file.AccessDeniedException":       "java.nio.file.FileSystemException",
	"java.nio.file.DirectoryNotEmptyException":  "java.nio.file.FileSystemException",
	"java.nio.file.FileAlreadyExistsException":  "java.nio.file.FileSystemException",
	"java.nio.file.NoSuchFileException":         "java.nio.file.FileSystemException",
	"java.nio.file.NotDirectoryException":       "java.nio.file.FileSystemException",
	"java.nio.file.InvalidPathException":        "java.lang.IllegalArgumentException",

	"java.net.MalformedURLException":  "java.io.IOException",
	"java.net.URISyntaxException":     "java.lang.Exception",
	"java.net.UnknownHostException":   "java.io.IOException",
	"java.net.SocketException":        "java.io.IOException",
	"java.net.ConnectException":       "java.net.SocketException",
	"java.net.SocketTimeoutException": "java.io.InterruptedIOException",

	"java.text.ParseException":                "java.lang.Exception",
	"java.sql.SQLException":                   "java.lang.Exception",
	"java.time.DateTimeException":             "java.lang.RuntimeException",
	"java.time.format.DateTimeParseException": "java.time.DateTimeException",
}
