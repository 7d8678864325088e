package downlevel

// RuntimeSource is injected ahead of any program whose pass Result reports
// NeedsRuntime, providing the two fixed helpers this pass emits qualified
// references to: $jscomp.inherits and $jscomp.makeIterator (spec.md §6).
const RuntimeSource = `var $jscomp = $jscomp || {};

$jscomp.inherits = function(childCtor, parentCtor) {
  function tempCtor() {}
  tempCtor.prototype = parentCtor.prototype;
  childCtor.superClass_ = parentCtor.prototype;
  childCtor.prototype = new tempCtor();
  childCtor.prototype.constructor = childCtor;
  for (var p in parentCtor) {
    if (Object.defineProperties) {
      var descriptor = Object.getOwnPropertyDescriptor(parentCtor, p);
      if (descriptor) {
        Object.defineProperty(childCtor, p, descriptor);
      }
    } else {
      childCtor[p] = parentCtor[p];
    }
  }
};

$jscomp.makeIterator = function(iterable) {
  var iteratorFunction = typeof Symbol != 'undefined' && Symbol.iterator && iterable[Symbol.iterator];
  if (iteratorFunction) {
    return iteratorFunction.call(iterable);
  }
  if (typeof iterable.length == 'number') {
    var index = 0;
    return {
      next: function() {
        if (index >= iterable.length) {
          return {done: true, value: undefined};
        }
        return {done: false, value: iterable[index++]};
      }
    };
  }
  throw new Error(String(iterable) + ' is not an iterable or ArrayLike');
};
`
